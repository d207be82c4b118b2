// internal/pipeline/config.go
package pipeline

type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
}

type PipelineConfig struct {
	Name        string            `yaml:"name"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Scan        *ScanConfig       `yaml:"scan"`
	Read        *ReadConfig       `yaml:"read"`
	Write       *WriteConfig      `yaml:"write"`
}

// ---- CREDENTIALS ----

// At most one of AppConfig / File is set. Both empty means the
// runtime-default application configuration.
type CredentialsConfig struct {
	AppConfig string `yaml:"app_config"`
	File      string `yaml:"file"`
}

// ---- STAGES ----

type ScanConfig struct {
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Directory string `yaml:"directory"`
	Pattern   string `yaml:"pattern"`
	Name      string `yaml:"name"`
}

type ReadConfig struct {
	Bucket   string `yaml:"bucket"`
	Endpoint string `yaml:"endpoint"`
	Name     string `yaml:"name"`
}

type WriteConfig struct {
	Bucket   string  `yaml:"bucket"`
	Endpoint string  `yaml:"endpoint"`
	Object   string  `yaml:"object"`
	Format   string  `yaml:"format"`            // raw | parquet
	Rollover float64 `yaml:"time_per_object_s"` // seconds; 0 => default
	Header   string  `yaml:"header"`
	Name     string  `yaml:"name"`
}

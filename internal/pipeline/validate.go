// internal/pipeline/validate.go
package pipeline

import "fmt"

// Validate checks pipeline correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	p := cfg.Pipeline

	if p.Name == "" {
		return fmt.Errorf("pipeline: name required")
	}

	// ------------------------------------------------------------
	// CREDENTIALS SOURCE (AT MOST ONE)
	// ------------------------------------------------------------

	if p.Credentials.AppConfig != "" && p.Credentials.File != "" {
		return fmt.Errorf(
			"pipeline %q: credentials app_config and file are mutually exclusive",
			p.Name,
		)
	}

	// ------------------------------------------------------------
	// STAGE CHAIN (scan feeds read feeds write)
	// ------------------------------------------------------------

	if p.Scan == nil {
		return fmt.Errorf("pipeline %q: scan stage required", p.Name)
	}
	if p.Write != nil && p.Read == nil {
		return fmt.Errorf(
			"pipeline %q: write stage requires a read stage to consume",
			p.Name,
		)
	}

	// ------------------------------------------------------------
	// PER-STAGE FIELDS
	// ------------------------------------------------------------

	if p.Scan.Bucket == "" {
		return fmt.Errorf("pipeline %q: scan.bucket required", p.Name)
	}
	if p.Scan.Endpoint == "" {
		return fmt.Errorf("pipeline %q: scan.endpoint required", p.Name)
	}

	if p.Read != nil {
		if p.Read.Bucket == "" {
			return fmt.Errorf("pipeline %q: read.bucket required", p.Name)
		}
		if p.Read.Endpoint == "" {
			return fmt.Errorf("pipeline %q: read.endpoint required", p.Name)
		}
	}

	if p.Write != nil {
		if p.Write.Bucket == "" {
			return fmt.Errorf("pipeline %q: write.bucket required", p.Name)
		}
		if p.Write.Endpoint == "" {
			return fmt.Errorf("pipeline %q: write.endpoint required", p.Name)
		}
		if p.Write.Object == "" {
			return fmt.Errorf("pipeline %q: write.object required", p.Name)
		}
		switch p.Write.Format {
		case "", "raw", "parquet":
		default:
			return fmt.Errorf(
				"pipeline %q: write.format must be raw or parquet, got %q",
				p.Name, p.Write.Format,
			)
		}
		if p.Write.Format == "parquet" && p.Write.Header != "" {
			return fmt.Errorf(
				"pipeline %q: write.header only applies to raw format",
				p.Name,
			)
		}
		// 0 means "use the default"; explicit values share the
		// binding's exclusive one-second floor.
		if p.Write.Rollover != 0 && p.Write.Rollover <= 1 {
			return fmt.Errorf(
				"pipeline %q: write.time_per_object_s must be greater than 1, got %v",
				p.Name, p.Write.Rollover,
			)
		}
	}

	return nil
}

// internal/pipeline/normalize.go
package pipeline

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.Pipeline

	if p.Scan != nil {
		if p.Scan.Directory == "" {
			p.Scan.Directory = "/"
		}
		if p.Scan.Pattern == "" {
			p.Scan.Pattern = ".*"
		}
	}

	if p.Write != nil {
		if p.Write.Format == "" {
			p.Write.Format = "raw"
		}
		if p.Write.Rollover == 0 {
			p.Write.Rollover = 10
		}
	}
}

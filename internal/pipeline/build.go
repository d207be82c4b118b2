// internal/pipeline/build.go
package pipeline

import (
	"fmt"
	"os"

	"cosbind"
	"cosbind/topology"
)

// Build constructs the topology for one pipeline.
// Assumes the config has already passed Validate and Normalize.
func Build(cfg *Config) (*topology.Topology, error) {
	p := cfg.Pipeline

	creds, err := credentials(p.Credentials)
	if err != nil {
		return nil, err
	}

	topo := topology.New(p.Name)

	// ---- scan ----
	names, err := cosbind.Scan(topo, cosbind.ScanOptions{
		Bucket:      p.Scan.Bucket,
		Endpoint:    p.Scan.Endpoint,
		Directory:   p.Scan.Directory,
		Pattern:     p.Scan.Pattern,
		Credentials: creds,
		Name:        p.Scan.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: scan: %w", p.Name, err)
	}

	if p.Read == nil {
		return topo, nil
	}

	// ---- read ----
	lines, err := cosbind.Read(names, cosbind.ReadOptions{
		Bucket:      p.Read.Bucket,
		Endpoint:    p.Read.Endpoint,
		Credentials: creds,
		Name:        p.Read.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: read: %w", p.Name, err)
	}

	if p.Write == nil {
		return topo, nil
	}

	// ---- write ----
	switch p.Write.Format {
	case "parquet":
		_, err = cosbind.WriteParquet(lines, cosbind.WriteParquetOptions{
			Bucket:        p.Write.Bucket,
			Endpoint:      p.Write.Endpoint,
			ObjectName:    p.Write.Object,
			TimePerObject: cosbind.Seconds(p.Write.Rollover),
			Credentials:   creds,
			Name:          p.Write.Name,
		})
	default:
		_, err = cosbind.Write(lines, cosbind.WriteOptions{
			Bucket:        p.Write.Bucket,
			Endpoint:      p.Write.Endpoint,
			ObjectName:    p.Write.Object,
			TimePerObject: cosbind.Seconds(p.Write.Rollover),
			Header:        p.Write.Header,
			Credentials:   creds,
			Name:          p.Write.Name,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: write: %w", p.Name, err)
	}

	return topo, nil
}

// credentials maps the config credentials source onto the binding's
// credential variants. Returns nil for the runtime default.
func credentials(c CredentialsConfig) (cosbind.Credentials, error) {
	switch {
	case c.File != "":
		raw, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("pipeline: read credentials file: %w", err)
		}
		sc, err := cosbind.ParseServiceCredentials(raw)
		if err != nil {
			return nil, err
		}
		return sc, nil
	case c.AppConfig != "":
		return cosbind.AppConfigRef(c.AppConfig), nil
	default:
		return nil, nil
	}
}

// internal/pipeline/load_test.go
package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FullDefinition(t *testing.T) {
	path := writeDefinition(t, `
pipeline:
  name: archive-mirror
  credentials:
    app_config: myconf
  scan:
    bucket: in-bucket
    endpoint: s3.private.example.cloud
    directory: /incoming
    pattern: '.*\.csv$'
  read:
    bucket: in-bucket
    endpoint: s3.private.example.cloud
  write:
    bucket: out-bucket
    endpoint: s3.private.example.cloud
    object: out_%OBJECTNUM.csv
    format: raw
    time_per_object_s: 60
    header: id,name,value
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	p := cfg.Pipeline
	assert.Equal(t, "archive-mirror", p.Name)
	assert.Equal(t, "myconf", p.Credentials.AppConfig)
	require.NotNil(t, p.Scan)
	assert.Equal(t, "/incoming", p.Scan.Directory)
	assert.Equal(t, `.*\.csv$`, p.Scan.Pattern)
	require.NotNil(t, p.Write)
	assert.Equal(t, 60.0, p.Write.Rollover)
	assert.Equal(t, "id,name,value", p.Write.Header)

	assert.NoError(t, Validate(cfg))
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeDefinition(t, `
pipeline:
  name: p1
  scna:
    bucket: b
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

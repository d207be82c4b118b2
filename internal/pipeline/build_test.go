// internal/pipeline/build_test.go
package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosbind/internal/op"
	"cosbind/topology"
)

func TestBuild_FullChain(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.Credentials.AppConfig = "myconf"
	Normalize(cfg)

	topo, err := Build(cfg)

	require.NoError(t, err)
	assert.Equal(t, "p1", topo.Name())

	ops := topo.Operators()
	require.Len(t, ops, 3)
	assert.Equal(t, op.KindScan, ops[0].Kind)
	assert.Equal(t, op.KindSource, ops[1].Kind)
	assert.Equal(t, op.KindSink, ops[2].Kind)

	// read consumes scan, write consumes read
	require.Len(t, ops[1].Inputs(), 1)
	assert.Same(t, ops[0], ops[1].Inputs()[0].Operator())
	require.Len(t, ops[2].Inputs(), 1)
	assert.Same(t, ops[1], ops[2].Inputs()[0].Operator())

	// credentials reference reaches every operator
	for _, o := range ops {
		assert.Equal(t, topology.RString("myconf"), o.Params[op.ParamAppConfigName])
	}
}

func TestBuild_ScanOnly(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.Read = nil
	cfg.Pipeline.Write = nil
	Normalize(cfg)

	topo, err := Build(cfg)

	require.NoError(t, err)
	assert.Len(t, topo.Operators(), 1)
}

func TestBuild_DefaultCredentials(t *testing.T) {
	cfg := validConfig()
	Normalize(cfg)

	topo, err := Build(cfg)

	require.NoError(t, err)
	p := topo.Operators()[0].Params
	assert.Equal(t, topology.RString("cos"), p[op.ParamAppConfigName])
	assert.NotContains(t, p, op.ParamIAMAPIKey)
}

func TestBuild_CredentialsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	doc := `{"apikey":"key-1","resource_instance_id":"a:b:c"}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg := validConfig()
	cfg.Pipeline.Credentials.File = path
	Normalize(cfg)

	topo, err := Build(cfg)

	require.NoError(t, err)
	p := topo.Operators()[0].Params
	assert.Equal(t, topology.RString("key-1"), p[op.ParamIAMAPIKey])
	assert.Equal(t, topology.RString("c"), p[op.ParamIAMServiceInstanceID])
	assert.NotContains(t, p, op.ParamAppConfigName)
}

func TestBuild_MissingCredentialsFile(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.Credentials.File = filepath.Join(t.TempDir(), "nope.json")
	Normalize(cfg)

	_, err := Build(cfg)

	assert.Error(t, err)
}

func TestBuild_ParquetFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.Write.Format = "parquet"
	Normalize(cfg)

	topo, err := Build(cfg)

	require.NoError(t, err)
	sink := topo.Operators()[2]
	assert.Equal(t, topology.RString("parquet"), sink.Params[op.ParamStorageFormat])
	assert.Equal(t, topology.RString("SNAPPY"), sink.Params[op.ParamParquetCompression])
}

func TestBuild_WriteRollover(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.Write.Rollover = 60
	Normalize(cfg)

	topo, err := Build(cfg)

	require.NoError(t, err)
	sink := topo.Operators()[2]
	assert.Equal(t, topology.Float64(60.0), sink.Params[op.ParamTimePerObject])
}

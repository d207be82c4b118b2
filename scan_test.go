// scan_test.go
package cosbind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosbind/internal/op"
	"cosbind/topology"
)

func TestScan_ParamAssemblyDefaults(t *testing.T) {
	topo := topology.New("t")

	names, err := Scan(topo, ScanOptions{
		Bucket:   "in-bucket",
		Endpoint: "s3.private.example.cloud",
	})

	require.NoError(t, err)
	inv := names.Operator()
	assert.Equal(t, op.KindScan, inv.Kind)
	assert.Equal(t, topology.SchemaString, inv.OutputSchema)

	p := inv.Params
	assert.Equal(t, topology.RString("s3a://in-bucket"), p[op.ParamObjectStorageURI])
	assert.Equal(t, topology.RString("s3.private.example.cloud"), p[op.ParamEndpoint])
	assert.Equal(t, topology.RString("/"), p[op.ParamDirectory])
	assert.Equal(t, topology.RString(".*"), p[op.ParamPattern])

	// No credentials supplied: default app config, no IAM pair.
	assert.Equal(t, topology.RString("cos"), p[op.ParamAppConfigName])
	assert.NotContains(t, p, op.ParamIAMAPIKey)
	assert.NotContains(t, p, op.ParamIAMServiceInstanceID)
}

func TestScan_InlineCredentialsSuppressAppConfig(t *testing.T) {
	topo := topology.New("t")

	names, err := Scan(topo, ScanOptions{
		Bucket:   "in-bucket",
		Endpoint: "ep",
		Credentials: ServiceCredentials{
			APIKey:             "key-1",
			ResourceInstanceID: "a:b:c",
		},
	})

	require.NoError(t, err)
	p := names.Operator().Params
	assert.Equal(t, topology.RString("key-1"), p[op.ParamIAMAPIKey])
	assert.Equal(t, topology.RString("c"), p[op.ParamIAMServiceInstanceID])
	assert.NotContains(t, p, op.ParamAppConfigName)
}

func TestScan_ExplicitOptions(t *testing.T) {
	topo := topology.New("t")
	delay := 5.0
	strict := true

	names, err := Scan(topo, ScanOptions{
		Bucket:      "in-bucket",
		Endpoint:    "ep",
		Directory:   "/sample",
		Pattern:     `SAMPLE_[0-9]*\.ascii\.text$`,
		Credentials: AppConfigRef("myconf"),
		VMArg:       "-Xmx 2048m",
		Name:        "SampleScan",
		InitDelay:   &delay,
		StrictMode:  &strict,
	})

	require.NoError(t, err)
	inv := names.Operator()
	assert.Equal(t, "SampleScan", inv.Name)

	p := inv.Params
	assert.Equal(t, topology.RString("/sample"), p[op.ParamDirectory])
	assert.Equal(t, topology.RString(`SAMPLE_[0-9]*\.ascii\.text$`), p[op.ParamPattern])
	assert.Equal(t, topology.RString("myconf"), p[op.ParamAppConfigName])
	assert.Equal(t, topology.RString("-Xmx 2048m"), p[op.ParamVMArg])
	assert.Equal(t, topology.Float64(5.0), p[op.ParamInitDelay])
	assert.Equal(t, topology.Boolean(true), p[op.ParamStrictMode])
	assert.NotContains(t, p, op.ParamSleepTime)
}

func TestScan_GeneratedName(t *testing.T) {
	topo := topology.New("t")

	names, err := Scan(topo, ScanOptions{Bucket: "b", Endpoint: "ep"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(names.Operator().Name, "ObjectStorageScan_"))
}

func TestScan_RequiredFields(t *testing.T) {
	topo := topology.New("t")

	_, err := Scan(nil, ScanOptions{Bucket: "b", Endpoint: "ep"})
	assert.ErrorIs(t, err, ErrNilTopology)

	_, err = Scan(topo, ScanOptions{Endpoint: "ep"})
	assert.ErrorIs(t, err, ErrBucketRequired)

	_, err = Scan(topo, ScanOptions{Bucket: "b"})
	assert.ErrorIs(t, err, ErrEndpointRequired)

	// Invalid input constructs nothing.
	assert.Empty(t, topo.Operators())
}

func TestScan_CredentialErrorPropagates(t *testing.T) {
	topo := topology.New("t")

	_, err := Scan(topo, ScanOptions{
		Bucket:      "b",
		Endpoint:    "ep",
		Credentials: ServiceCredentials{APIKey: "key-only"},
	})

	assert.ErrorIs(t, err, ErrMissingField)
	assert.Empty(t, topo.Operators())
}

// scan.go
package cosbind

import (
	"cosbind/internal/op"
	"cosbind/topology"
)

// ScanOptions configure a directory scan.
// Bucket and Endpoint are required; the bucket must already exist in
// the storage service.
type ScanOptions struct {
	Bucket   string
	Endpoint string

	// Directory to scan; subdirectories are not descended into.
	// Defaults to "/".
	Directory string
	// Pattern limits emitted names to those matching the regular
	// expression. Defaults to ".*".
	Pattern string

	Credentials Credentials
	VMArg       string
	// Name of the invocation; generated when empty.
	Name string

	InitDelay  *float64
	SleepTime  *float64
	StrictMode *bool
}

// Scan emits the names of new or modified objects found in a bucket
// directory. The output is a string stream of object names.
func Scan(t *topology.Topology, o ScanOptions) (*topology.Stream, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	if o.Bucket == "" {
		return nil, ErrBucketRequired
	}
	if o.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	rc, err := resolveCredentials(o.Credentials)
	if err != nil {
		return nil, err
	}

	dir := o.Directory
	if dir == "" {
		dir = "/"
	}
	pattern := o.Pattern
	if pattern == "" {
		pattern = ".*"
	}

	inv := op.Scan{
		Common:     commonFields(o.Bucket, o.Endpoint, o.VMArg, rc),
		Directory:  dir,
		Pattern:    pattern,
		InitDelay:  o.InitDelay,
		SleepTime:  o.SleepTime,
		StrictMode: o.StrictMode,
	}

	node := t.Invoke(op.KindScan, o.Name, inv.Params())
	return node.Output(topology.SchemaString), nil
}

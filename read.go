// read.go
package cosbind

import (
	"cosbind/internal/op"
	"cosbind/topology"
)

// ReadOptions configure an object reader.
type ReadOptions struct {
	Bucket   string
	Endpoint string

	Credentials Credentials
	VMArg       string
	// Name of the invocation; generated when empty.
	Name string

	BlockSize *int64
	Encoding  string
	InitDelay *float64
}

// Read reads the object named by each tuple on the input stream and
// emits its content line by line as a string stream.
func Read(names *topology.Stream, o ReadOptions) (*topology.Stream, error) {
	if names == nil {
		return nil, ErrNilStream
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

	inv := op.Source{
		Common:    commonFields(o.Bucket, o.Endpoint, o.VMArg, rc),
		BlockSize: o.BlockSize,
		Encoding:  o.Encoding,
		InitDelay: o.InitDelay,
	}

	node := names.Graph().Invoke(op.KindSource, o.Name, inv.Params(), names)
	return node.Output(topology.SchemaString), nil
}

// write.go
package cosbind

import (
	"cosbind/internal/op"
	"cosbind/topology"
)

// WriteOptions configure a raw object writer.
type WriteOptions struct {
	Bucket   string
	Endpoint string

	// ObjectName may contain %OBJECTNUM, replaced with a counter that
	// increments each time a new object is opened.
	ObjectName string

	// TimePerObject is the rollover interval; nil means DefaultRollover.
	TimePerObject Rollover

	// Header, when non-empty, is written as the first line of every
	// object (CSV-style output).
	Header string

	Credentials Credentials
	VMArg       string
	// Name of the invocation; generated when empty.
	Name string

	BytesPerObject  *int64
	TuplesPerObject *int64
	CloseOnPunct    *bool
	TimeFormat      string
	Encoding        string
}

// Write terminates a string stream by writing each tuple into raw
// objects in the bucket, rolling over per TimePerObject.
func Write(lines *topology.Stream, o WriteOptions) (*topology.Sink, error) {
	if lines == nil {
		return nil, ErrNilStream
	}
	sink, err := sinkFields(o.Bucket, o.Endpoint, o.ObjectName, o.VMArg, o.Credentials, o.TimePerObject)
	if err != nil {
		return nil, err
	}

	sink.StorageFormat = op.FormatRaw
	sink.BytesPerObject = o.BytesPerObject
	sink.TuplesPerObject = o.TuplesPerObject
	sink.CloseOnPunct = o.CloseOnPunct
	sink.TimeFormat = o.TimeFormat
	sink.Encoding = o.Encoding
	if o.Header != "" {
		sink.HeaderRow = &o.Header
	}

	node := lines.Graph().Invoke(op.KindSink, o.Name, sink.Params(), lines)
	return topology.NewSink(node), nil
}

// WriteParquetOptions configure a parquet object writer.
type WriteParquetOptions struct {
	Bucket   string
	Endpoint string

	// ObjectName may contain %OBJECTNUM, replaced with a counter that
	// increments each time a new object is opened.
	ObjectName string

	// TimePerObject is the rollover interval; nil means DefaultRollover.
	TimePerObject Rollover

	Credentials Credentials
	VMArg       string
	// Name of the invocation; generated when empty.
	Name string

	BlockSize        *int64
	PageSize         *int64
	DictPageSize     *int64
	WriterVersion    string
	SchemaValidation *bool
	// PartitionBy lists input attributes used as parquet partition
	// columns, in order.
	PartitionBy             []string
	SkipPartitionAttributes *bool
}

// WriteParquet terminates a structured stream by writing each tuple
// into parquet objects (SNAPPY, dictionary encoding on). Attributes
// map to parquet columns.
func WriteParquet(tuples *topology.Stream, o WriteParquetOptions) (*topology.Sink, error) {
	if tuples == nil {
		return nil, ErrNilStream
	}
	sink, err := sinkFields(o.Bucket, o.Endpoint, o.ObjectName, o.VMArg, o.Credentials, o.TimePerObject)
	if err != nil {
		return nil, err
	}

	enableDict := true
	sink.StorageFormat = op.FormatParquet
	sink.ParquetCompression = op.ParquetCompressionSnappy
	sink.ParquetEnableDict = &enableDict
	sink.ParquetBlockSize = o.BlockSize
	sink.ParquetPageSize = o.PageSize
	sink.ParquetDictPageSize = o.DictPageSize
	sink.ParquetWriterVersion = o.WriterVersion
	sink.ParquetSchemaValidation = o.SchemaValidation
	sink.PartitionValueAttributes = o.PartitionBy
	sink.SkipPartitionAttributes = o.SkipPartitionAttributes

	node := tuples.Graph().Invoke(op.KindSink, o.Name, sink.Params(), tuples)
	return topology.NewSink(node), nil
}

// sinkFields validates and assembles the fields shared by both writer
// entry points.
func sinkFields(bucket, endpoint, objectName, vmArg string, c Credentials, r Rollover) (op.Sink, error) {
	if bucket == "" {
		return op.Sink{}, ErrBucketRequired
	}
	if endpoint == "" {
		return op.Sink{}, ErrEndpointRequired
	}
	if objectName == "" {
		return op.Sink{}, ErrObjectNameRequired
	}
	rc, err := resolveCredentials(c)
	if err != nil {
		return op.Sink{}, err
	}
	if r == nil {
		r = DefaultRollover
	}
	secs, err := normalizeRollover(r)
	if err != nil {
		return op.Sink{}, err
	}

	return op.Sink{
		Common:        commonFields(bucket, endpoint, vmArg, rc),
		ObjectName:    objectName,
		TimePerObject: &secs,
	}, nil
}

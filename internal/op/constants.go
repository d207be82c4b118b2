// internal/op/constants.go
package op

// Operator kinds from the Cloud Object Storage toolkit catalog.
// These names are the external contract and MUST NOT be configurable.

const (
	KindScan   = "com.ibm.streamsx.objectstorage::ObjectStorageScan"
	KindSource = "com.ibm.streamsx.objectstorage::ObjectStorageSource"
	KindSink   = "com.ibm.streamsx.objectstorage::ObjectStorageSink"
)

// ---- PARAMETER KEYS ----

// Shared across operators.
const (
	ParamVMArg                = "vmArg"
	ParamAppConfigName        = "appConfigName"
	ParamEndpoint             = "endpoint"
	ParamObjectStorageURI     = "objectStorageURI"
	ParamIAMAPIKey            = "IAMApiKey"
	ParamIAMServiceInstanceID = "IAMServiceInstanceId"
)

// Scan.
const (
	ParamDirectory  = "directory"
	ParamPattern    = "pattern"
	ParamInitDelay  = "initDelay"
	ParamSleepTime  = "sleepTime"
	ParamStrictMode = "strictMode"
)

// Source.
const (
	ParamBlockSize = "blockSize"
	ParamEncoding  = "encoding"
)

// Sink.
const (
	ParamObjectName          = "objectName"
	ParamObjectNameAttribute = "objectNameAttribute"
	ParamDataAttribute       = "dataAttribute"
	ParamStorageFormat       = "storageFormat"
	ParamTimePerObject       = "timePerObject"
	ParamBytesPerObject      = "bytesPerObject"
	ParamTuplesPerObject     = "tuplesPerObject"
	ParamCloseOnPunct        = "closeOnPunct"
	ParamTimeFormat          = "timeFormat"
	ParamHeaderRow           = "headerRow"
)

// Sink, parquet tuning.
const (
	ParamParquetCompression       = "parquetCompression"
	ParamParquetEnableDict        = "parquetEnableDict"
	ParamParquetBlockSize         = "parquetBlockSize"
	ParamParquetPageSize          = "parquetPageSize"
	ParamParquetDictPageSize      = "parquetDictPageSize"
	ParamParquetWriterVersion     = "parquetWriterVersion"
	ParamParquetSchemaValidation  = "parquetEnableSchemaValidation"
	ParamPartitionValueAttributes = "partitionValueAttributes"
	ParamSkipPartitionAttributes  = "skipPartitionAttributes"
)

// ---- STORAGE FORMATS ----

const (
	FormatRaw     = "raw"
	FormatParquet = "parquet"
)

// ParquetCompressionSnappy is the only codec the writer binding emits.
const ParquetCompressionSnappy = "SNAPPY"

// URISchemePrefix prefixes every bucket to form the objectStorageURI.
const URISchemePrefix = "s3a://"

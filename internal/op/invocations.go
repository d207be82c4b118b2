// internal/op/invocations.go

// Package op binds the three Cloud Object Storage toolkit operators.
// Each descriptor renders its fields into the parameter set the
// external operator catalog expects. Optional fields are pointers:
// nil means "leave the operator default alone", so absent and zero
// stay distinguishable on the wire.
package op

import "cosbind/topology"

// Common carries the fields every COS operator accepts.
// Exactly one of AppConfigName or the IAM pair is set by the caller;
// this package does not re-check that invariant.
type Common struct {
	Endpoint         string
	ObjectStorageURI string
	VMArg            string

	AppConfigName        string
	IAMAPIKey            string
	IAMServiceInstanceID string
}

func (c Common) params() topology.Params {
	p := topology.Params{}
	if c.Endpoint != "" {
		p[ParamEndpoint] = topology.RString(c.Endpoint)
	}
	if c.ObjectStorageURI != "" {
		p[ParamObjectStorageURI] = topology.RString(c.ObjectStorageURI)
	}
	if c.VMArg != "" {
		p[ParamVMArg] = topology.RString(c.VMArg)
	}
	if c.AppConfigName != "" {
		p[ParamAppConfigName] = topology.RString(c.AppConfigName)
	}
	if c.IAMAPIKey != "" {
		p[ParamIAMAPIKey] = topology.RString(c.IAMAPIKey)
	}
	if c.IAMServiceInstanceID != "" {
		p[ParamIAMServiceInstanceID] = topology.RString(c.IAMServiceInstanceID)
	}
	return p
}

// ---- SCAN ----

// Scan describes one ObjectStorageScan invocation.
type Scan struct {
	Common

	// Directory is always emitted; the operator has no usable default.
	Directory string
	Pattern   string

	InitDelay  *float64
	SleepTime  *float64
	StrictMode *bool
}

func (s Scan) Params() topology.Params {
	p := s.Common.params()
	p[ParamDirectory] = topology.RString(s.Directory)
	if s.Pattern != "" {
		p[ParamPattern] = topology.RString(s.Pattern)
	}
	if s.InitDelay != nil {
		p[ParamInitDelay] = topology.Float64(*s.InitDelay)
	}
	if s.SleepTime != nil {
		p[ParamSleepTime] = topology.Float64(*s.SleepTime)
	}
	if s.StrictMode != nil {
		p[ParamStrictMode] = topology.Boolean(*s.StrictMode)
	}
	return p
}

// ---- SOURCE ----

// Source describes one ObjectStorageSource invocation.
type Source struct {
	Common

	BlockSize *int64
	Encoding  string
	InitDelay *float64
}

func (s Source) Params() topology.Params {
	p := s.Common.params()
	if s.BlockSize != nil {
		p[ParamBlockSize] = topology.Int64(*s.BlockSize)
	}
	if s.Encoding != "" {
		p[ParamEncoding] = topology.RString(s.Encoding)
	}
	if s.InitDelay != nil {
		p[ParamInitDelay] = topology.Float64(*s.InitDelay)
	}
	return p
}

// ---- SINK ----

// Sink describes one ObjectStorageSink invocation, raw or parquet.
type Sink struct {
	Common

	ObjectName          string
	ObjectNameAttribute string
	DataAttribute       string
	StorageFormat       string
	TimePerObject       *float64
	BytesPerObject      *int64
	TuplesPerObject     *int64
	CloseOnPunct        *bool
	TimeFormat          string
	Encoding            string
	HeaderRow           *string

	ParquetCompression       string
	ParquetEnableDict        *bool
	ParquetBlockSize         *int64
	ParquetPageSize          *int64
	ParquetDictPageSize      *int64
	ParquetWriterVersion     string
	ParquetSchemaValidation  *bool
	PartitionValueAttributes []string
	SkipPartitionAttributes  *bool
}

func (s Sink) Params() topology.Params {
	p := s.Common.params()
	if s.ObjectName != "" {
		p[ParamObjectName] = topology.RString(s.ObjectName)
	}
	if s.ObjectNameAttribute != "" {
		p[ParamObjectNameAttribute] = topology.RString(s.ObjectNameAttribute)
	}
	if s.DataAttribute != "" {
		p[ParamDataAttribute] = topology.RString(s.DataAttribute)
	}
	if s.StorageFormat != "" {
		p[ParamStorageFormat] = topology.RString(s.StorageFormat)
	}
	if s.TimePerObject != nil {
		p[ParamTimePerObject] = topology.Float64(*s.TimePerObject)
	}
	if s.BytesPerObject != nil {
		p[ParamBytesPerObject] = topology.Int64(*s.BytesPerObject)
	}
	if s.TuplesPerObject != nil {
		p[ParamTuplesPerObject] = topology.Int64(*s.TuplesPerObject)
	}
	if s.CloseOnPunct != nil {
		p[ParamCloseOnPunct] = topology.Boolean(*s.CloseOnPunct)
	}
	if s.TimeFormat != "" {
		p[ParamTimeFormat] = topology.RString(s.TimeFormat)
	}
	if s.Encoding != "" {
		p[ParamEncoding] = topology.RString(s.Encoding)
	}
	if s.HeaderRow != nil {
		p[ParamHeaderRow] = topology.RString(*s.HeaderRow)
	}
	if s.ParquetCompression != "" {
		p[ParamParquetCompression] = topology.RString(s.ParquetCompression)
	}
	if s.ParquetEnableDict != nil {
		p[ParamParquetEnableDict] = topology.Boolean(*s.ParquetEnableDict)
	}
	if s.ParquetBlockSize != nil {
		p[ParamParquetBlockSize] = topology.Int64(*s.ParquetBlockSize)
	}
	if s.ParquetPageSize != nil {
		p[ParamParquetPageSize] = topology.Int64(*s.ParquetPageSize)
	}
	if s.ParquetDictPageSize != nil {
		p[ParamParquetDictPageSize] = topology.Int64(*s.ParquetDictPageSize)
	}
	if s.ParquetWriterVersion != "" {
		p[ParamParquetWriterVersion] = topology.RString(s.ParquetWriterVersion)
	}
	if s.ParquetSchemaValidation != nil {
		p[ParamParquetSchemaValidation] = topology.Boolean(*s.ParquetSchemaValidation)
	}
	if len(s.PartitionValueAttributes) > 0 {
		p[ParamPartitionValueAttributes] = topology.RStringList(s.PartitionValueAttributes)
	}
	if s.SkipPartitionAttributes != nil {
		p[ParamSkipPartitionAttributes] = topology.Boolean(*s.SkipPartitionAttributes)
	}
	return p
}

// errors.go
package cosbind

import "errors"

// Validation failures are synchronous and terminal: no partial
// parameter set is ever produced from invalid input, and nothing is
// downgraded to a default.
var (
	// ErrMissingField reports inline credentials lacking a required field.
	ErrMissingField = errors.New("cosbind: required credential field missing")

	// ErrInvalidRolloverType reports a rollover value of an unsupported shape.
	ErrInvalidRolloverType = errors.New("cosbind: unsupported rollover interval type")

	// ErrInvalidRolloverValue reports a rollover interval of one second or less.
	ErrInvalidRolloverValue = errors.New("cosbind: rollover interval must be longer than one second")

	ErrNilTopology        = errors.New("cosbind: topology is nil")
	ErrNilStream          = errors.New("cosbind: input stream is nil")
	ErrBucketRequired     = errors.New("cosbind: bucket required")
	ErrEndpointRequired   = errors.New("cosbind: endpoint required")
	ErrObjectNameRequired = errors.New("cosbind: object name required")
)

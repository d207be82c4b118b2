// normalize.go
package cosbind

import (
	"fmt"
	"strings"
	"time"

	"cosbind/internal/op"
)

// defaultAppConfigName is used when no credentials are supplied at all.
const defaultAppConfigName = "cos"

// resolvedCredentials is the normalized form merged into operator
// parameters. Exactly one of appConfigName or the IAM pair is set,
// never both, never neither.
type resolvedCredentials struct {
	appConfigName     string
	apiKey            string
	serviceInstanceID string
}

// resolveCredentials normalizes caller credentials once, at the API
// boundary. Pure; identical input yields identical output.
func resolveCredentials(c Credentials) (resolvedCredentials, error) {
	switch v := c.(type) {
	case nil:
		return resolvedCredentials{appConfigName: defaultAppConfigName}, nil

	case AppConfigRef:
		if v == "" {
			return resolvedCredentials{appConfigName: defaultAppConfigName}, nil
		}
		return resolvedCredentials{appConfigName: string(v)}, nil

	case ServiceCredentials:
		if v.APIKey == "" {
			return resolvedCredentials{}, fmt.Errorf("%w: apikey", ErrMissingField)
		}
		if v.ResourceInstanceID == "" {
			return resolvedCredentials{}, fmt.Errorf("%w: resource_instance_id", ErrMissingField)
		}
		id := serviceInstanceID(v.ResourceInstanceID)
		if id == "" {
			return resolvedCredentials{}, fmt.Errorf("%w: resource_instance_id has no non-empty segment", ErrMissingField)
		}
		return resolvedCredentials{apiKey: v.APIKey, serviceInstanceID: id}, nil

	default:
		// Sealed union; only reachable if a variant is added without
		// a matching case here.
		return resolvedCredentials{}, fmt.Errorf("cosbind: unknown credentials variant %T", c)
	}
}

// serviceInstanceID extracts the instance id the toolkit operators
// want from a CRN-style resource_instance_id. A CRN usually ends in
// "::", so the wanted segment is the LAST non-empty one scanning left
// to right, not the final element.
func serviceInstanceID(rid string) string {
	id := ""
	for _, seg := range strings.Split(rid, ":") {
		if seg != "" {
			id = seg
		}
	}
	return id
}

// ---- ROLLOVER ----

// Rollover is the time-per-object interval of a writer: how long an
// output object stays open before it is closed and a new one started.
// Two variants exist: Seconds and Interval.
type Rollover interface {
	rollover()
}

// Seconds is a rollover interval in plain seconds.
type Seconds float64

func (Seconds) rollover() {}

// Interval is a rollover interval taken from a time.Duration.
type Interval time.Duration

func (Interval) rollover() {}

// DefaultRollover applies when a writer gets no explicit interval.
const DefaultRollover = Seconds(10)

// normalizeRollover converts r to float seconds. One second is the
// minimum meaningful rollover; the boundary is exclusive.
func normalizeRollover(r Rollover) (float64, error) {
	var secs float64
	switch v := r.(type) {
	case Seconds:
		secs = float64(v)
	case Interval:
		secs = time.Duration(v).Seconds()
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidRolloverType, r)
	}
	if secs <= 1 {
		return 0, fmt.Errorf("%w: got %vs", ErrInvalidRolloverValue, secs)
	}
	return secs, nil
}

// commonFields assembles the operator fields shared by all three
// entry points.
func commonFields(bucket, endpoint, vmArg string, rc resolvedCredentials) op.Common {
	return op.Common{
		Endpoint:             endpoint,
		ObjectStorageURI:     op.URISchemePrefix + bucket,
		VMArg:                vmArg,
		AppConfigName:        rc.appConfigName,
		IAMAPIKey:            rc.apiKey,
		IAMServiceInstanceID: rc.serviceInstanceID,
	}
}

// credentials.go
package cosbind

import (
	"encoding/json"
	"fmt"
)

// Credentials selects how the COS operators authenticate.
// Exactly two variants exist: a named application configuration
// (AppConfigRef) resolved by the external runtime, or inline service
// credential material (ServiceCredentials). A nil Credentials means
// "use the default application configuration".
type Credentials interface {
	credentials()
}

// AppConfigRef names an externally stored credential bundle.
// The bundle itself is opaque to this library.
type AppConfigRef string

func (AppConfigRef) credentials() {}

// ServiceCredentials is inline COS service credential material, as
// found in a service-credentials JSON document. ResourceInstanceID is
// the colon-delimited CRN of the storage instance.
type ServiceCredentials struct {
	APIKey             string `json:"apikey"`
	ResourceInstanceID string `json:"resource_instance_id"`
}

func (ServiceCredentials) credentials() {}

// ParseServiceCredentials decodes a COS service-credentials JSON
// document. Field presence is not enforced here; resolution at the
// entry points rejects incomplete credentials.
func ParseServiceCredentials(data []byte) (ServiceCredentials, error) {
	var sc ServiceCredentials
	if err := json.Unmarshal(data, &sc); err != nil {
		return ServiceCredentials{}, fmt.Errorf("cosbind: parse service credentials: %w", err)
	}
	return sc, nil
}

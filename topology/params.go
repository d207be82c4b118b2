// topology/params.go
package topology

// SPL scalar parameter types understood by the submission runtime.
const (
	TypeRString     = "rstring"
	TypeRStringList = "rstring[]"
	TypeFloat64     = "float64"
	TypeInt64       = "int64"
	TypeBoolean     = "boolean"
)

// Value is one typed operator parameter value.
// Values carry an explicit type tag so the graph JSON round-trips
// without guessing scalar types on the runtime side.
type Value struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func RString(s string) Value { return Value{Type: TypeRString, Value: s} }

func RStringList(ss []string) Value { return Value{Type: TypeRStringList, Value: ss} }

func Float64(f float64) Value { return Value{Type: TypeFloat64, Value: f} }

func Int64(i int64) Value { return Value{Type: TypeInt64, Value: i} }

func Boolean(b bool) Value { return Value{Type: TypeBoolean, Value: b} }

// Params is the string-keyed parameter set attached to one invocation.
type Params map[string]Value

// Merge copies src entries into p. Existing keys are overwritten.
func (p Params) Merge(src Params) {
	for k, v := range src {
		p[k] = v
	}
}

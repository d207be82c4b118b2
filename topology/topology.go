// topology/topology.go

// Package topology is a minimal in-memory data-flow graph builder.
// It records operator invocations (kind + parameters + wiring) so the
// assembled graph can be handed to an external submission runtime.
// No execution happens here.
package topology

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// SchemaString is the output schema of line/name oriented streams.
const SchemaString = "tuple<rstring string>"

// Topology is a named graph under construction.
// Not safe for concurrent mutation; build the graph from one goroutine.
type Topology struct {
	name string
	ops  []*Invocation
}

// New creates an empty topology.
func New(name string) *Topology {
	return &Topology{name: name}
}

func (t *Topology) Name() string { return t.name }

// Operators returns invocations in insertion order.
func (t *Topology) Operators() []*Invocation { return t.ops }

// Invoke appends one operator invocation to the graph.
// An empty name gets a generated one (operator short kind + uuid fragment).
func (t *Topology) Invoke(kind, name string, params Params, inputs ...*Stream) *Invocation {
	if name == "" {
		name = generatedName(kind)
	}
	inv := &Invocation{
		Kind:   kind,
		Name:   name,
		Params: params,
		topo:   t,
		inputs: inputs,
	}
	t.ops = append(t.ops, inv)
	return inv
}

// Invocation is one operator in the graph.
// Params are owned by the invocation after Invoke; callers must not
// mutate them afterwards.
type Invocation struct {
	Kind   string
	Name   string
	Params Params

	// OutputSchema is empty for sinks.
	OutputSchema string

	topo   *Topology
	inputs []*Stream
}

// Output declares the invocation's output stream with the given schema.
func (i *Invocation) Output(schema string) *Stream {
	i.OutputSchema = schema
	return &Stream{op: i}
}

// Inputs returns the upstream streams feeding this invocation.
func (i *Invocation) Inputs() []*Stream { return i.inputs }

// Stream is a handle to one invocation's output.
type Stream struct {
	op *Invocation
}

// Operator returns the invocation producing this stream.
func (s *Stream) Operator() *Invocation { return s.op }

// Graph returns the topology the producing operator belongs to.
// Streams never cross graphs; downstream assemblers use this to find
// the topology to attach to.
func (s *Stream) Graph() *Topology { return s.op.topo }

// Sink is a terminal handle; it produces no stream.
type Sink struct {
	op *Invocation
}

// Operator returns the sink invocation.
func (s *Sink) Operator() *Invocation { return s.op }

// NewSink wraps a terminal invocation.
func NewSink(op *Invocation) *Sink { return &Sink{op: op} }

func generatedName(kind string) string {
	short := kind
	if idx := strings.LastIndex(kind, "::"); idx >= 0 {
		short = kind[idx+2:]
	}
	return short + "_" + uuid.NewString()[:8]
}

// ---- JSON export ----

type operatorJSON struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	Params Params   `json:"params,omitempty"`
	Inputs []string `json:"inputs,omitempty"`
	Schema string   `json:"schema,omitempty"`
}

type graphJSON struct {
	Name      string         `json:"name"`
	Operators []operatorJSON `json:"operators"`
}

// MarshalJSON renders the graph for external submission tooling.
// Operator order is insertion order; inputs reference upstream
// operator names.
func (t *Topology) MarshalJSON() ([]byte, error) {
	g := graphJSON{Name: t.name}
	for _, op := range t.ops {
		oj := operatorJSON{
			Kind:   op.Kind,
			Name:   op.Name,
			Params: op.Params,
			Schema: op.OutputSchema,
		}
		for _, in := range op.inputs {
			oj.Inputs = append(oj.Inputs, in.op.Name)
		}
		g.Operators = append(g.Operators, oj)
	}
	return json.Marshal(g)
}

// Package node defines the plugin contract between preview nodes and the
// node-graph host: typed input schemas, the invocation entry point, the UI
// payload format and the startup registry.
package node

import (
	"gorgonia.org/tensor"
)

// InputType is the semantic type tag of a declared node input.
type InputType string

const (
	// TypeImage marks an input carrying an image tensor.
	TypeImage InputType = "IMAGE"
	// TypeInt marks a numeric parameter input.
	TypeInt InputType = "INT"
)

// InputSpec declares one required input of a node: its name, semantic type,
// optional numeric bounds and the tooltip the host renders next to the
// control. Nil numeric fields mean the bound is not declared and the host
// applies no constraint.
type InputSpec struct {
	Name    string
	Type    InputType
	Default *int
	Min     *int
	Max     *int
	Step    *int
	Tooltip string
}

// Int returns a pointer to v, for populating the optional numeric fields of
// an InputSpec inline.
func Int(v int) *int {
	return &v
}

// Invocation carries the values the host resolved for one node execution:
// the image tensor and the numeric parameters keyed by input name. The
// tensor is owned by the host and must not be retained past the call.
type Invocation struct {
	Images *tensor.Dense
	Params map[string]int
}

// IntParam returns the named numeric parameter, or fallback when the host
// did not supply it.
func (inv Invocation) IntParam(name string, fallback int) int {
	if v, ok := inv.Params[name]; ok {
		return v
	}
	return fallback
}

// Node is one plugin node as seen by the host. Preview nodes are terminal:
// they produce a UI payload and no graph-visible outputs, so IsOutput
// reports true and a failed Invoke aborts the pipeline run that reached it.
type Node interface {
	// Name is the stable identifier the host uses to look the node up.
	Name() string
	// DisplayName is the label shown in the host's node palette.
	DisplayName() string
	// Category is the palette section the node is listed under.
	Category() string
	// Inputs declares the node's required inputs for the host's generic
	// input-rendering logic.
	Inputs() []InputSpec
	// IsOutput reports whether the node is a UI-terminal output node.
	IsOutput() bool
	// Invoke executes the node once. It returns either a UI payload or an
	// error; never both, and never a partial payload.
	Invoke(inv Invocation) (*Payload, error)
}

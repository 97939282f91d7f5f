package node

import (
	"github.com/pkg/errors"
)

// Registry holds the nodes a host discovers at startup. It replaces
// process-global name-to-implementation maps: the integration layer
// constructs one explicitly and passes it to the host.
//
// Registry is not safe for concurrent mutation; populate it during startup
// and treat it as read-only afterwards.
type Registry struct {
	byName map[string]Node
	names  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Node)}
}

// Register adds a node under its Name. Registering an unnamed node or a
// duplicate name is an error.
func (r *Registry) Register(n Node) error {
	if n == nil {
		return errors.New("node is nil")
	}
	name := n.Name()
	if name == "" {
		return errors.New("node has an empty name")
	}
	if _, exists := r.byName[name]; exists {
		return errors.Errorf("node %q is already registered", name)
	}
	r.byName[name] = n
	r.names = append(r.names, name)
	return nil
}

// MustRegister is Register for startup wiring, panicking on error.
func (r *Registry) MustRegister(n Node) {
	if err := r.Register(n); err != nil {
		panic(err)
	}
}

// Get looks a node up by name.
func (r *Registry) Get(name string) (Node, bool) {
	n, ok := r.byName[name]
	return n, ok
}

// Names returns the registered node names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DisplayNames returns the name-to-display-label mapping the host uses to
// populate its node palette.
func (r *Registry) DisplayNames() map[string]string {
	out := make(map[string]string, len(r.byName))
	for name, n := range r.byName {
		out[name] = n.DisplayName()
	}
	return out
}

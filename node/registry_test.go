package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNode is a minimal Node for registry tests.
type stubNode struct {
	name    string
	display string
}

func (s *stubNode) Name() string                        { return s.name }
func (s *stubNode) DisplayName() string                 { return s.display }
func (s *stubNode) Category() string                    { return "test" }
func (s *stubNode) Inputs() []InputSpec                 { return nil }
func (s *stubNode) IsOutput() bool                      { return true }
func (s *stubNode) Invoke(Invocation) (*Payload, error) { return &Payload{}, nil }

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubNode{name: "B", display: "Node B"}))
	require.NoError(t, r.Register(&stubNode{name: "A", display: "Node A"}))

	got, ok := r.Get("A")
	require.True(t, ok)
	assert.Equal(t, "Node A", got.DisplayName())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"B", "A"}, r.Names(), "Names must keep registration order")
	assert.Equal(t, map[string]string{"A": "Node A", "B": "Node B"}, r.DisplayNames())
}

func TestRegistry_RejectsDuplicatesAndNil(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubNode{name: "A"}))

	assert.Error(t, r.Register(&stubNode{name: "A"}), "duplicate names must be rejected")
	assert.Error(t, r.Register(&stubNode{name: ""}), "empty names must be rejected")
	assert.Error(t, r.Register(nil))

	assert.Panics(t, func() { r.MustRegister(&stubNode{name: "A"}) })
}

func TestInvocation_IntParam(t *testing.T) {
	inv := Invocation{Params: map[string]int{"max_width": 1024}}
	assert.Equal(t, 1024, inv.IntParam("max_width", 4096))
	assert.Equal(t, 4096, inv.IntParam("missing", 4096))

	empty := Invocation{}
	assert.Equal(t, 30, empty.IntParam("fps", 30), "nil params map must fall back")
}

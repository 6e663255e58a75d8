// Package label issues the process-wide unique names attached to blocks.
package label

import (
	"strconv"
	"sync/atomic"
)

// Label identifies exactly one block. Two labels issued by the same registry
// never share a name.
type Label struct {
	prefix string
	id     uint64
	name   string
}

// Name returns the label in its `__{prefix}_{id}` form.
func (l Label) Name() string { return l.name }

func (l Label) Prefix() string { return l.prefix }

func (l Label) ID() uint64 { return l.id }

func (l Label) String() string { return l.name }

// Registry hands out labels from a monotonically increasing counter.
type Registry struct {
	last atomic.Uint64
}

// NewRegistry creates a registry whose first label carries id 1
func NewRegistry() *Registry {
	return &Registry{}
}

// Issue returns a fresh label for prefix. Safe for concurrent use.
func (r *Registry) Issue(prefix string) Label {
	id := r.last.Add(1)
	return Label{
		prefix: prefix,
		id:     id,
		name:   "__" + prefix + "_" + strconv.FormatUint(id, 10),
	}
}

var process = NewRegistry()

// New issues a label from the process-wide registry.
func New(prefix string) Label {
	return process.Issue(prefix)
}

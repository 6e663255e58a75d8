// Package blocks defines the building blocks of a STIR program.
//
// Every block satisfies Block. Composite blocks keep references to children
// supplied by the caller; they never copy or own the children themselves, so
// the same block may appear under several parents as long as the resulting
// graph has no cycle.
package blocks

import "stir/internal/label"

// Block is the capability shared by every block variant. The set of
// implementations is closed: Boolean, Number, Str, IfElse, Loop, Function,
// Call and Critical.
type Block interface {
	// Label returns the block's unique label name.
	Label() string

	// Debug writes a structured dump of the block to the diagnostic output.
	Debug()

	// Output renders the block as STIR text. It never mutates state.
	Output() string

	// Interpret executes the block.
	Interpret() bool

	// IsCritical reports whether the block must never run concurrently with
	// any other block.
	IsCritical() bool

	block()
}

// Primitive is a leaf block wrapping a single scalar.
type Primitive[T any] interface {
	Block
	Get() T
	Set(value T)
}

var (
	_ Primitive[bool]    = (*Boolean)(nil)
	_ Primitive[float64] = (*Number)(nil)
	_ Primitive[string]  = (*Str)(nil)

	_ Block = (*IfElse)(nil)
	_ Block = (*Loop)(nil)
	_ Block = (*Function)(nil)
	_ Block = (*Call)(nil)
	_ Block = (*Critical)(nil)
)

// base carries the label owned by every variant except Critical, which
// borrows the label of the block it wraps.
type base struct {
	label label.Label
}

func newBase(prefix string) base {
	return base{label: label.New(prefix)}
}

func (b *base) Label() string { return b.label.Name() }

func (b *base) IsCritical() bool { return false }

func (b *base) block() {}

// Children returns the direct children of b in a fixed order. A Call's
// function comes first, followed by its actual arguments.
func Children(b Block) []Block {
	var children []Block
	if c, ok := b.(*Call); ok {
		children = append(children, c.fn)
	}
	for _, s := range slots(b) {
		children = append(children, s.block)
	}
	return children
}

// Walk visits b and every block reachable from it, depth first, parents
// before children. A block shared by several parents is visited once per
// path. Returning false from fn skips the children of that block.
func Walk(b Block, fn func(Block) bool) {
	if b == nil || !fn(b) {
		return
	}
	for _, child := range Children(b) {
		Walk(child, fn)
	}
}

type slot struct {
	role  string
	block Block
}

func slots(b Block) []slot {
	var out []slot
	add := func(role string, child Block) {
		if child != nil {
			out = append(out, slot{role: role, block: child})
		}
	}

	switch v := b.(type) {
	case *IfElse:
		add("cond", v.cond)
		add("then", v.then)
		add("else", v.els)
	case *Loop:
		add("lo", v.lo)
		add("hi", v.hi)
		add("body", v.body)
	case *Function:
		for _, a := range v.args {
			add("arg", a)
		}
		for _, s := range v.stmts {
			add("stmt", s)
		}
		add("return", v.ret)
	case *Call:
		for _, a := range v.args {
			add("arg", a)
		}
	case *Critical:
		add("inner", v.inner)
	}
	return out
}

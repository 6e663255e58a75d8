package blocks

import "slices"

// Call invokes a Function. The actual arguments are carried along but not
// yet bound to the function's placeholders.
type Call struct {
	base
	fn   *Function
	args []Block
}

func NewCall(fn *Function, args []Block) *Call {
	return &Call{
		base: newBase("call"),
		fn:   fn,
		args: slices.Clone(args),
	}
}

func (c *Call) Function() *Function { return c.fn }

func (c *Call) Args() []Block { return c.args }

func (c *Call) Debug() { debug(c) }

func (c *Call) Output() string {
	return "CALL " + c.fn.Label()
}

// Interpret runs the called function to completion and returns its result.
func (c *Call) Interpret() bool {
	return c.fn.Interpret()
}

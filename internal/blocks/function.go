package blocks

import (
	"slices"
	"strings"
)

// Function holds a sequence of statement blocks executed one by one, the
// placeholder blocks standing for its arguments, and an optional return
// value block.
type Function struct {
	base
	args  []Block
	stmts []Block
	ret   Block
}

// NewFunction creates a Function. A nil args slice means the function
// declares no arguments.
func NewFunction(args, stmts []Block) *Function {
	return &Function{
		base:  newBase("function"),
		args:  slices.Clone(args),
		stmts: slices.Clone(stmts),
	}
}

// WithReturn sets the block whose result the function returns.
func (f *Function) WithReturn(ret Block) *Function {
	f.ret = ret
	return f
}

// Arg returns the argument placeholder at index.
func (f *Function) Arg(index int) (Block, bool) {
	if index < 0 || index >= len(f.args) {
		return nil, false
	}
	return f.args[index], true
}

func (f *Function) Args() []Block { return f.args }

func (f *Function) Statements() []Block { return f.stmts }

// Return returns the return value block, or nil.
func (f *Function) Return() Block { return f.ret }

func (f *Function) Debug() { debug(f) }

func (f *Function) Output() string {
	var sb strings.Builder
	sb.WriteString("FUNCTION ")
	sb.WriteString(f.Label())
	sb.WriteString("(")
	for i, arg := range f.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Output())
	}
	sb.WriteString(") {\n")

	for _, stmt := range f.stmts {
		writeLine(&sb, stmt.Output())
	}
	if f.ret != nil {
		writeLine(&sb, "RETURN "+f.ret.Output())
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Interpret runs every statement in order, whatever their results, then
// returns the result of the return value block. Without one it returns false.
func (f *Function) Interpret() bool {
	for _, stmt := range f.stmts {
		stmt.Interpret()
	}
	if f.ret == nil {
		return false
	}
	return f.ret.Interpret()
}

// writeLine terminates s with a newline unless it already ends with one.
func writeLine(sb *strings.Builder, s string) {
	sb.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		sb.WriteString("\n")
	}
}

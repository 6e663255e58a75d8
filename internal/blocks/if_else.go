package blocks

import "strings"

// IfElse runs one of two blocks depending on a condition block.
type IfElse struct {
	base

	// cond decides which branch runs.
	cond Block

	// then runs when cond interprets to true.
	then Block

	// els runs when cond interprets to false. May be nil.
	els Block
}

// NewIfElse creates an IfElse block. Pass nil as els when there is no
// else branch.
func NewIfElse(cond, then, els Block) *IfElse {
	return &IfElse{
		base: newBase("if_else"),
		cond: cond,
		then: then,
		els:  els,
	}
}

func (ie *IfElse) Cond() Block { return ie.cond }

func (ie *IfElse) Then() Block { return ie.then }

// Else returns the else branch, or nil.
func (ie *IfElse) Else() Block { return ie.els }

func (ie *IfElse) Debug() { debug(ie) }

func (ie *IfElse) Output() string {
	var sb strings.Builder
	sb.WriteString("IF ")
	sb.WriteString(ie.cond.Output())
	sb.WriteString(" {\n")
	sb.WriteString(ie.then.Output())
	sb.WriteString("\n}")

	if ie.els == nil {
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(" ELSE {\n")
	sb.WriteString(ie.els.Output())
	sb.WriteString("\n}\n")
	return sb.String()
}

// Interpret evaluates the condition first, then exactly one branch. A false
// condition without an else branch yields false.
func (ie *IfElse) Interpret() bool {
	if ie.cond.Interpret() {
		return ie.then.Interpret()
	}
	if ie.els != nil {
		return ie.els.Interpret()
	}
	return false
}

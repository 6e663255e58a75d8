package blocks

import (
	"math"
	"strconv"
)

// Number is a double precision float.
type Number struct {
	base
	value float64
}

func NewNumber(value float64) *Number {
	return &Number{base: newBase("number"), value: value}
}

func (n *Number) Get() float64 { return n.value }

func (n *Number) Set(value float64) { n.value = value }

func (n *Number) Debug() { debug(n) }

// Output renders the shortest decimal form that reads back to the same
// value. NaN renders as `NaN` and infinities as `+Inf`/`-Inf`.
func (n *Number) Output() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

// Interpret is a validity check: false only for NaN.
func (n *Number) Interpret() bool { return !math.IsNaN(n.value) }

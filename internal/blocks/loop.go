package blocks

import (
	"context"
	"math"
	"strings"
)

// Loop represents ranged and unbounded loops.
//
// With both bounds present the body runs once for every i in [lo, hi),
// stepping by one, and the loop succeeds when every iteration succeeded.
// The count is fixed before the first iteration, so ranges whose bounds are
// too large for float64 steps still end. Infinite bounds fail the loop.
// Otherwise the loop is unbounded: the body repeats until it interprets to
// false, which ends the loop successfully.
//
// An attached context is checked before every iteration; once it is done the
// loop stops and interprets to false. Without one, an unbounded loop whose
// body never fails does not terminate.
type Loop struct {
	base
	lo   Block
	hi   Block
	body Block
	ctx  context.Context
}

// NewLoop creates a Loop. Pass nil for lo or hi to make the loop unbounded
// and nil for body to make it empty.
func NewLoop(lo, hi, body Block) *Loop {
	return &Loop{
		base: newBase("loop"),
		lo:   lo,
		hi:   hi,
		body: body,
	}
}

// WithContext attaches ctx as the loop's cancellation signal.
func (l *Loop) WithContext(ctx context.Context) *Loop {
	l.ctx = ctx
	return l
}

func (l *Loop) Lo() Block { return l.lo }

func (l *Loop) Hi() Block { return l.hi }

func (l *Loop) Body() Block { return l.body }

// Ranged reports whether both bounds are present.
func (l *Loop) Ranged() bool { return l.lo != nil && l.hi != nil }

func (l *Loop) Debug() { debug(l) }

func (l *Loop) Output() string {
	var sb strings.Builder
	sb.WriteString("LOOP")

	if l.lo != nil || l.hi != nil {
		sb.WriteString(" [")
		if l.lo != nil {
			sb.WriteString(l.lo.Output())
		}
		sb.WriteString(", ")
		if l.hi != nil {
			sb.WriteString(l.hi.Output())
		}
		sb.WriteString(")")
	}

	sb.WriteString(" {\n")
	if l.body != nil {
		sb.WriteString(l.body.Output())
	}
	sb.WriteString("\n}\n")
	return sb.String()
}

func (l *Loop) Interpret() bool {
	if l.Ranged() {
		return l.interpretRanged()
	}
	return l.interpretUnbounded()
}

func (l *Loop) interpretRanged() bool {
	if !l.lo.Interpret() || !l.hi.Interpret() {
		return false
	}

	lo, ok := numeric(l.lo)
	if !ok {
		return false
	}
	hi, ok := numeric(l.hi)
	if !ok {
		return false
	}

	n, ok := iterations(lo, hi)
	if !ok {
		return false
	}

	if l.body == nil {
		return true
	}

	succeeded := true
	for i := int64(0); i < n; i++ {
		if l.cancelled() {
			return false
		}
		if !l.body.Interpret() {
			succeeded = false
		}
	}
	return succeeded
}

// iterations counts the values lo, lo+1, ... below hi. Infinite bounds and
// counts beyond int64 are rejected.
func iterations(lo, hi float64) (int64, bool) {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, false
	}
	if hi <= lo {
		return 0, true
	}

	n := math.Ceil(hi - lo)
	if math.IsInf(n, 0) || n >= math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func (l *Loop) interpretUnbounded() bool {
	if l.body == nil {
		return true
	}

	for {
		if l.cancelled() {
			return false
		}
		if !l.body.Interpret() {
			return true
		}
	}
}

func (l *Loop) cancelled() bool {
	return l.ctx != nil && l.ctx.Err() != nil
}

// numeric extracts the value of a Number, looking through Critical wrappers.
func numeric(b Block) (float64, bool) {
	switch v := b.(type) {
	case *Number:
		return v.Get(), true
	case *Critical:
		return numeric(v.inner)
	}
	return 0, false
}

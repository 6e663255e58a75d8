package blocks

// Boolean is either `true` or `false`.
type Boolean struct {
	base
	value bool
}

// NewBoolean allocates a Boolean holding value
func NewBoolean(value bool) *Boolean {
	return &Boolean{base: newBase("bool"), value: value}
}

func (b *Boolean) Get() bool { return b.value }

func (b *Boolean) Set(value bool) { b.value = value }

func (b *Boolean) Debug() { debug(b) }

func (b *Boolean) Output() string {
	if b.value {
		return "true"
	}
	return "false"
}

// Interpret returns the stored value.
func (b *Boolean) Interpret() bool { return b.value }

package blocks

// Critical marks the block it wraps as a unit that shall not be split across
// concurrent workers. Everything but IsCritical is forwarded to the wrapped
// block unchanged, including its label.
type Critical struct {
	inner Block
}

// NewCritical wraps block. When a critical region shows up while building a
// program, build its block first and then wrap it.
func NewCritical(block Block) *Critical {
	return &Critical{inner: block}
}

// Inner returns the wrapped block.
func (c *Critical) Inner() Block { return c.inner }

func (c *Critical) Label() string { return c.inner.Label() }

func (c *Critical) Debug() { c.inner.Debug() }

func (c *Critical) Output() string { return c.inner.Output() }

func (c *Critical) Interpret() bool { return c.inner.Interpret() }

func (c *Critical) IsCritical() bool { return true }

func (c *Critical) block() {}

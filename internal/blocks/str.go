package blocks

// Str wraps a piece of text.
type Str struct {
	base
	value string
}

func NewStr(value string) *Str {
	return &Str{base: newBase("str"), value: value}
}

func (s *Str) Get() string { return s.value }

func (s *Str) Set(value string) { s.value = value }

func (s *Str) Debug() { debug(s) }

func (s *Str) Output() string { return s.value }

// Interpret reports whether the text is non-empty.
func (s *Str) Interpret() bool { return len(s.value) > 0 }

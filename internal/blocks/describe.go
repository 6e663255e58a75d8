package blocks

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Description is the structured view of a block written by Debug.
type Description struct {
	Kind     string `yaml:"kind"`
	Label    string `yaml:"label"`
	Critical bool   `yaml:"critical,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Target   string `yaml:"target,omitempty"`
	Children []Slot `yaml:"children,omitempty"`
}

// Slot is a child block together with the role it plays in its parent.
type Slot struct {
	Role  string       `yaml:"role"`
	Block *Description `yaml:"block"`
}

// Describe builds the description of b and of everything below it. A Call
// names its function through Target instead of describing it again.
func Describe(b Block) *Description {
	if c, ok := b.(*Critical); ok {
		d := Describe(c.inner)
		d.Critical = true
		return d
	}

	d := &Description{
		Kind:  Kind(b),
		Label: b.Label(),
	}

	switch v := b.(type) {
	case *Boolean, *Number, *Str:
		d.Value = v.Output()
	case *Call:
		d.Target = v.fn.Label()
	}

	for _, s := range slots(b) {
		d.Children = append(d.Children, Slot{Role: s.role, Block: Describe(s.block)})
	}
	return d
}

// Kind names the variant of b.
func Kind(b Block) string {
	switch b.(type) {
	case *Boolean:
		return "Boolean"
	case *Number:
		return "Number"
	case *Str:
		return "Str"
	case *IfElse:
		return "IfElse"
	case *Loop:
		return "Loop"
	case *Function:
		return "Function"
	case *Call:
		return "Call"
	case *Critical:
		return "Critical"
	}
	return "Unknown"
}

// Dump renders the description of b as YAML.
func Dump(b Block) (string, error) {
	out, err := yaml.Marshal(Describe(b))
	if err != nil {
		return "", fmt.Errorf("failed to dump %s: %w", b.Label(), err)
	}
	return string(out), nil
}

var (
	debugMu     sync.Mutex
	debugOutput io.Writer = color.Error
)

// SetDebugOutput redirects Debug. The default is standard error.
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugOutput = w
}

func debug(b Block) {
	debugMu.Lock()
	defer debugMu.Unlock()

	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(debugOutput, "%s %s\n", header("-- "+Kind(b)), b.Label())

	dump, err := Dump(b)
	if err != nil {
		color.New(color.FgRed).Fprintln(debugOutput, err)
		return
	}
	fmt.Fprint(debugOutput, dump)
}

package repl

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestStartFriesEachLine(t *testing.T) {
	in := strings.NewReader("ENTRY true\n\nENTRY IF false { 1 }\n")
	var out bytes.Buffer

	Start(in, &out, 0)

	got := out.String()
	assert.Contains(t, got, "ENTRY true\n=> true\n")
	assert.Contains(t, got, "ENTRY IF false {\n1\n}\n=> false\n")
	assert.True(t, strings.HasSuffix(got, PROMPT+"\n"))
	assert.Equal(t, 4, strings.Count(got, PROMPT))
}

func TestStartReportsDiagnostics(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("ENTRY CALL missing\n"), &out, 0)

	assert.Contains(t, out.String(), "error[E0101]: function 'missing' is not defined")
	assert.NotContains(t, out.String(), "=>")
}

func TestStartReportsMissingEntry(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("42\n"), &out, 0)

	assert.Contains(t, out.String(), "42\n")
	assert.Contains(t, out.String(), "error[E0200]")
}

func TestStartBoundsLoops(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("ENTRY LOOP { true }\n"), &out, 10*time.Millisecond)

	assert.Contains(t, out.String(), "=> false")
}

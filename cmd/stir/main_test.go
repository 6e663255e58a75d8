package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stir/internal/blocks"
	"stir/internal/config"
	"stir/internal/recipe"
)

func init() {
	color.NoColor = true
}

func writeSource(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.stir")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRunUsage(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run(nil, config.Default(), &out))
	assert.Contains(t, out.String(), "Usage: stir")

	out.Reset()
	path := writeSource(t, "ENTRY true")
	assert.Equal(t, 1, run([]string{"bake", path}, config.Default(), &out))
	assert.Contains(t, out.String(), "Usage: stir")
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"fry", filepath.Join(t.TempDir(), "nope.stir")}, config.Default(), &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "failed to read file")
}

func TestRunFry(t *testing.T) {
	path := writeSource(t, "ENTRY IF true { 1 } ELSE { false }\n")

	var out bytes.Buffer
	code := run([]string{"fry", path}, config.Default(), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "ENTRY IF true {\n1\n} ELSE {\nfalse\n}")
	assert.Contains(t, out.String(), ": true")
}

func TestRunFryWithoutEntry(t *testing.T) {
	path := writeSource(t, "true\n")

	var out bytes.Buffer
	code := run([]string{"fry", path}, config.Default(), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "error[E0200]: recipe has no entry point")
}

func TestRunFryLoopTimeout(t *testing.T) {
	path := writeSource(t, "ENTRY LOOP { true }\n")

	cfg := config.Default()
	cfg.LoopTimeout = 20 * time.Millisecond

	var out bytes.Buffer
	code := run([]string{"fry", path}, cfg, &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Loop timeout reached")
	assert.Contains(t, out.String(), ": false")
}

func TestRunReportsDiagnostics(t *testing.T) {
	path := writeSource(t, "FUNCTION main() { }\nENTRY CALL mian\n")

	var out bytes.Buffer
	code := run([]string{"fry", path}, config.Default(), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "error[E0101]: function 'mian' is not defined")
	assert.Contains(t, out.String(), "Compilation failed after")
}

func TestRunFmt(t *testing.T) {
	path := writeSource(t, "// comment\nENTRY   LOOP [ 0 , 3 ) {   true }\n")

	var out bytes.Buffer
	code := run([]string{"fmt", path}, config.Default(), &out)

	assert.Equal(t, 0, code)
	assert.Equal(t, "ENTRY LOOP [0, 3) {\ntrue\n}\n", out.String())
}

func TestRunDebug(t *testing.T) {
	defer blocks.SetDebugOutput(os.Stderr)
	path := writeSource(t, "ENTRY 2.5\n")

	var out bytes.Buffer
	code := run([]string{"debug", path}, config.Default(), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "-- Number __number_")
	assert.Contains(t, out.String(), `value: "2.5"`)
}

func TestDumpListsCriticalBlocks(t *testing.T) {
	defer blocks.SetDebugOutput(os.Stderr)

	lock := blocks.NewCritical(blocks.NewStr("lock"))
	r := recipe.New()
	r.AddEntry(blocks.NewIfElse(blocks.NewBoolean(true), lock, nil))

	var out bytes.Buffer
	dump(&out, r)

	assert.Contains(t, out.String(), "-- IfElse")
	assert.Contains(t, out.String(), "critical: "+lock.Label()+"\n")

	out.Reset()
	dump(&out, recipe.New().Add(blocks.NewBoolean(true)))
	assert.NotContains(t, out.String(), "critical:")
}

func TestRunTranslate(t *testing.T) {
	path := writeSource(t, "ENTRY true\n")

	var out bytes.Buffer
	code := run([]string{"translate", path}, config.Default(), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "error[E0300]: cannot translate __bool_")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.5μs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.0ms", formatDuration(2*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.00min", formatDuration(2*time.Minute))
}

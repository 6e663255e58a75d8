package blocks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDescribeIfElse(t *testing.T) {
	cond := NewBoolean(true)
	then := NewNumber(2)
	els := NewStr("no")
	ie := NewIfElse(cond, then, els)

	want := &Description{
		Kind:  "IfElse",
		Label: ie.Label(),
		Children: []Slot{
			{Role: "cond", Block: &Description{Kind: "Boolean", Label: cond.Label(), Value: "true"}},
			{Role: "then", Block: &Description{Kind: "Number", Label: then.Label(), Value: "2"}},
			{Role: "else", Block: &Description{Kind: "Str", Label: els.Label(), Value: "no"}},
		},
	}

	if diff := cmp.Diff(want, Describe(ie)); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeCallAndCritical(t *testing.T) {
	f := NewFunction(nil, nil)
	call := NewCall(f, nil)

	d := Describe(NewCritical(call))
	assert.Equal(t, "Call", d.Kind)
	assert.True(t, d.Critical)
	assert.Equal(t, f.Label(), d.Target)
	assert.Empty(t, d.Children)
}

func TestDumpIsYAML(t *testing.T) {
	l := NewLoop(NewNumber(0), NewNumber(2), NewBoolean(false))

	out, err := Dump(l)
	require.NoError(t, err)

	var back Description
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, "Loop", back.Kind)
	require.Len(t, back.Children, 3)
	assert.Equal(t, "body", back.Children[2].Role)
	assert.Equal(t, "false", back.Children[2].Block.Value)
}

func TestDebugWritesDump(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(color.Error)

	b := NewBoolean(true)
	b.Debug()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "-- Boolean "+b.Label()+"\n"), out)
	assert.Contains(t, out, "kind: Boolean")
	assert.Contains(t, out, "value: \"true\"")
}

func TestCriticalDebugForwards(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(color.Error)

	n := NewNumber(1)
	NewCritical(n).Debug()

	var direct bytes.Buffer
	SetDebugOutput(&direct)
	n.Debug()

	assert.Equal(t, direct.String(), buf.String())
}

package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stir/internal/blocks"
)

func TestInit(t *testing.T) {
	r := New()

	assert.Nil(t, r.Entry())
	assert.Equal(t, 0, r.Len())
}

func TestAddOneBlockSizeAndEntry(t *testing.T) {
	r := New()
	b := blocks.NewBoolean(false)

	r.Add(b)

	assert.Nil(t, r.Entry())
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains(b.Label()))
}

func TestAddChains(t *testing.T) {
	r := New()
	r.Add(blocks.NewBoolean(true)).Add(blocks.NewNumber(1)).Add(blocks.NewStr("s"))
	assert.Equal(t, 3, r.Len())
}

func TestAddSameLabelOverwrites(t *testing.T) {
	r := New()
	b := blocks.NewBoolean(false)
	c := blocks.NewCritical(b)

	r.Add(b).Add(c)

	assert.Equal(t, 1, r.Len())
	got, ok := r.Get(b.Label())
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestAddEntry(t *testing.T) {
	r := New()
	b := blocks.NewBoolean(false)

	assert.True(t, r.AddEntry(b))

	assert.Same(t, b, r.Entry())
	assert.Equal(t, 1, r.Len())
}

func TestAddEntryIsSingular(t *testing.T) {
	r := New()
	first := blocks.NewBoolean(true)
	second := blocks.NewBoolean(false)

	require.True(t, r.AddEntry(first))
	result, err := r.Fry()
	require.NoError(t, err)
	assert.True(t, result)

	assert.False(t, r.AddEntry(second))
	assert.Same(t, first, r.Entry())
	assert.False(t, r.Contains(second.Label()))

	result, err = r.Fry()
	require.NoError(t, err)
	assert.True(t, result)
}

func TestFryWithoutEntry(t *testing.T) {
	r := New()
	r.Add(blocks.NewBoolean(true))

	_, err := r.Fry()
	assert.ErrorIs(t, err, ErrNoEntry)

	require.True(t, r.AddEntry(blocks.NewStr("")))
	result, err := r.Fry()
	require.NoError(t, err)
	assert.False(t, result)
}

func TestFryCallsThroughFunction(t *testing.T) {
	f := blocks.NewFunction(nil, []blocks.Block{blocks.NewBoolean(false)}).
		WithReturn(blocks.NewIfElse(blocks.NewNumber(1), blocks.NewStr("ok"), nil))
	call := blocks.NewCall(f, nil)

	r := New()
	r.Add(f)
	require.True(t, r.AddEntry(call))

	result, err := r.Fry()
	require.NoError(t, err)
	assert.True(t, result)
}

func TestLabelsAndCritical(t *testing.T) {
	a := blocks.NewBoolean(true)
	b := blocks.NewNumber(2)
	crit := blocks.NewCritical(blocks.NewStr("lock"))

	r := New()
	r.Add(b).Add(a).Add(crit)

	assert.Equal(t, []string{a.Label(), b.Label(), crit.Label()}, r.Labels())
	assert.Equal(t, []string{crit.Label()}, r.Critical())
}

func TestCriticalFindsNestedBlocks(t *testing.T) {
	inner := blocks.NewCritical(blocks.NewNumber(1))
	shared := blocks.NewCritical(blocks.NewBoolean(true))
	f := blocks.NewFunction(nil, []blocks.Block{inner, shared})
	call := blocks.NewCall(f, nil)
	ie := blocks.NewIfElse(shared, call, nil)

	r := New()
	r.Add(f)
	require.True(t, r.AddEntry(ie))

	// shared is reachable three ways but is reported once
	assert.Equal(t, []string{inner.Label(), shared.Label()}, r.Critical())
	assert.Empty(t, New().Add(blocks.NewBoolean(true)).Critical())
}

func TestOutput(t *testing.T) {
	cond := blocks.NewBoolean(true)
	ie := blocks.NewIfElse(cond, blocks.NewBoolean(true), blocks.NewBoolean(false))

	r := New()
	r.Add(cond)
	require.True(t, r.AddEntry(ie))

	// cond was created first, so it is rendered first
	want := "true\n" +
		"\n" +
		"ENTRY IF true {\ntrue\n} ELSE {\nfalse\n}\n"
	assert.Equal(t, want, r.Output())
}

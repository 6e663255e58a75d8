package label

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelLayout(t *testing.T) {
	l := New("a")
	assert.True(t, strings.HasPrefix(l.Name(), "__a_"), "got %s", l.Name())
	assert.Equal(t, "a", l.Prefix())
	assert.Equal(t, l.Name(), l.String())
}

func TestLabelLayoutComplexPrefix(t *testing.T) {
	l := New("this_is_complex")
	assert.Contains(t, l.Name(), "__this_is_complex_")
}

func TestLabelIDIncreases(t *testing.T) {
	l0 := New("a")
	l1 := New("a")

	assert.NotEqual(t, l0.Name(), l1.Name())
	assert.Greater(t, l1.ID(), l0.ID())
}

func TestRegistryStartsAtOne(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "__bool_1", r.Issue("bool").Name())
	assert.Equal(t, "__number_2", r.Issue("number").Name())
}

func TestLabelsArePairwiseDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		l := New("x")
		require.False(t, seen[l.Name()], "duplicate label %s", l.Name())
		seen[l.Name()] = true
	}
}

func TestRegistryConcurrentIssue(t *testing.T) {
	r := NewRegistry()

	const workers = 8
	const perWorker = 500

	names := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				names <- r.Issue("c").Name()
			}
		}()
	}
	wg.Wait()
	close(names)

	seen := make(map[string]bool, workers*perWorker)
	for name := range names {
		require.False(t, seen[name], "duplicate label %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

package randutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// draw returns a shuffled permutation of 0..n-1
func draw(s *Source, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	s.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func TestNewSourceDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	assert.Equal(t, draw(a, 16), draw(b, 16))

	c := NewSource(43)
	assert.NotEqual(t, draw(NewSource(42), 16), draw(c, 16))
	assert.Equal(t, int64(42), a.Seed())
}

func TestForkMatchesForkAt(t *testing.T) {
	root := NewSource(7)
	for i := uint64(0); i < 5; i++ {
		fork := root.Fork()
		assert.Equal(t, draw(NewSource(7).ForkAt(i), 8), draw(fork, 8), "fork %d", i)
	}
}

func TestForkDoesNotConsumeParent(t *testing.T) {
	forked := NewSource(99)
	for range 10 {
		forked.Fork()
	}
	assert.Equal(t, draw(NewSource(99), 8), draw(forked, 8))
}

func TestForksAreDecorrelated(t *testing.T) {
	root := NewSource(1)
	seen := make(map[string]bool)
	for range 100 {
		v := fmt.Sprint(draw(root.Fork(), 16))
		require.False(t, seen[v], "two forks produced the same shuffle")
		seen[v] = true
	}

	// A fork must not replay its parent.
	assert.NotEqual(t, draw(NewSource(1), 16), draw(NewSource(1).ForkAt(0), 16))
}

func TestShuffleIsPermutation(t *testing.T) {
	s := NewSource(3)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, xs)
}

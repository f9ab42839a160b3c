package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(7), New(7)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestStreamsDiffer(t *testing.T) {
	t.Parallel()

	first := Stream(7, 0).Uint64()
	assert.Equal(t, New(7).Uint64(), first)
	assert.NotEqual(t, first, Stream(7, 1).Uint64())
	assert.NotEqual(t, first, New(8).Uint64())
}

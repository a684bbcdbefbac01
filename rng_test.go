package fsbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetRNGIsolatedAndRepeatable(t *testing.T) {
	a := newOffsetRNG()
	b := newOffsetRNG()

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Int63n(16), b.Int63n(16), "sequences diverged at draw %d", i)
	}
}

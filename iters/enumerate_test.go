package iters_test

import (
	"testing"

	"github.com/ehsanranjbar/nestutils/iters"
	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	it := iters.Enumerate[int8](iters.Flatten(S{1, S{2, S{3}}}))
	defer it.Close()

	var n int
	for it.Rewind(); it.Valid(); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		require.Equal(t, int8(v.(int))-1, it.Key())
		n++
	}
	require.Equal(t, 3, n)
}

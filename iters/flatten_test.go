package iters_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ehsanranjbar/nestutils"
	"github.com/ehsanranjbar/nestutils/iters"
	"github.com/ehsanranjbar/nestutils/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type S = nestutils.Sequence

func paths(it nestutils.Iterator[iters.Path, any]) []iters.Path {
	keys := []iters.Path{}
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func TestFlatten(t *testing.T) {
	seq := S{1, S{2, 3}, S{4, S{5, 6}}, S{7, S{8, S{9}}}}

	it := iters.Flatten(seq)
	defer it.Close()

	values, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, 3, 4, 5, 6, 7, 8, 9}, values)

	require.Equal(t, []iters.Path{
		{0},
		{1, 0}, {1, 1},
		{2, 0}, {2, 1, 0}, {2, 1, 1},
		{3, 0}, {3, 1, 0}, {3, 1, 1, 0},
	}, paths(it))
}

func TestFlattenEmpty(t *testing.T) {
	for _, seq := range []S{nil, {}, {S{}}, {S{}, S{}, S{}}, {S{S{}}, []any{}}} {
		it := iters.Flatten(seq)
		it.Rewind()
		require.False(t, it.Valid())

		values, err := iters.Collect(it)
		require.NoError(t, err)
		require.Empty(t, values)
	}
}

func TestFlattenPaths(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		seq, count := testutil.Random(rng, 6, 4)

		it := iters.Flatten(seq)
		var n int
		for it.Rewind(); it.Valid(); it.Next() {
			v, err := it.Value()
			require.NoError(t, err)
			require.Equal(t, n, v)
			assert.Equal(t, v, lookup(seq, it.Key()))
			assert.Equal(t, len(it.Key()), it.Depth())
			n++
		}
		require.Equal(t, count, n)
		it.Close()
	}
}

func lookup(seq S, p iters.Path) any {
	var v any = seq
	for _, i := range p {
		switch s := v.(type) {
		case S:
			v = s[i]
		case []any:
			v = s[i]
		}
	}
	return v
}

func TestFlattenAgreesWithFlatten(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 100 {
		seq, _ := testutil.Random(rng, 7, 5)

		values, err := iters.Collect(iters.Flatten(seq))
		require.NoError(t, err)
		require.Equal(t, []any(nestutils.Flatten(seq)), values)
	}
}

func TestFlattenRewind(t *testing.T) {
	it := iters.Flatten(S{S{"a"}, "b"})
	defer it.Close()

	first, err := iters.Collect(it)
	require.NoError(t, err)
	second, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, first, second)

	it.Next()
	require.False(t, it.Valid())
}

func TestFlattenMaxDepth(t *testing.T) {
	it := iters.Flatten(S{1, S{2, S{3}}, 4}, nestutils.WithMaxDepth(2))
	defer it.Close()

	it.Rewind()
	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	it.Next()
	v, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	it.Next()
	require.True(t, it.Valid())
	_, err = it.Value()
	require.ErrorIs(t, err, nestutils.ErrMaxDepthExceeded)
	require.Equal(t, iters.Path{1, 1}, it.Key())

	it.Next()
	require.False(t, it.Valid())

	_, err = iters.Collect(it)
	require.ErrorIs(t, err, nestutils.ErrMaxDepthExceeded)
}

func TestFlattenReflection(t *testing.T) {
	it := iters.Flatten(S{[]int{1, 2}, []string{"x"}}, nestutils.WithReflection())

	values, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, "x"}, values)
}

func TestFlattenDeep(t *testing.T) {
	const depth = 100_000
	it := iters.Flatten(testutil.Deep(depth, "leaf"))
	defer it.Close()

	it.Rewind()
	require.True(t, it.Valid())
	require.Equal(t, depth, it.Depth())

	it.Next()
	require.False(t, it.Valid())
}

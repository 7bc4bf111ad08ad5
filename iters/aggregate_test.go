package iters_test

import (
	"testing"

	"github.com/ehsanranjbar/nestutils"
	"github.com/ehsanranjbar/nestutils/iters"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	it := iters.Aggregate(iters.Flatten(S{1, S{2, S{3}}}), func(state int, p iters.Path, v any) int {
		return state + v.(int)*len(p)
	})
	defer it.Close()

	_, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, 1*1+2*2+3*3, it.Result())
}

func TestCount(t *testing.T) {
	it := iters.Count(iters.Flatten(S{S{}, S{"a", S{"b"}}, "c"}))

	_, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, uint(3), it.Result())
}

func TestCountStopsWithLimit(t *testing.T) {
	counted := iters.Count(iters.Flatten(S{1, S{2, 3}, 4, 5}))
	it := iters.Limit(counted, 2)
	defer it.Close()

	values, err := iters.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, values)
	require.Equal(t, uint(2), counted.Result())
}

func TestCountSkipsErrors(t *testing.T) {
	it := iters.Count(iters.Flatten(S{1, S{S{2}}}, nestutils.WithMaxDepth(2)))
	defer it.Close()

	_, err := iters.Collect(it)
	require.ErrorIs(t, err, nestutils.ErrMaxDepthExceeded)
	require.Equal(t, uint(1), it.Result())
}

package nestutils_test

import (
	"testing"

	"github.com/ehsanranjbar/nestutils"
	"github.com/stretchr/testify/require"
)

func TestFlattenNodes(t *testing.T) {
	var (
		leaf = nestutils.Leaf[int]
		list = nestutils.List[int]
	)

	root := list(
		leaf(1),
		list(leaf(2), leaf(3)),
		list(leaf(4), list(leaf(5), leaf(6))),
		list(leaf(7), list(leaf(8), list(leaf(9)))),
	)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, nestutils.FlattenNodes(root))

	require.Equal(t, []int{}, nestutils.FlattenNodes(list()))
	require.Equal(t, []int{}, nestutils.FlattenNodes(list(list(), list(list()))))
	require.Equal(t, []int{7}, nestutils.FlattenNodes(leaf(7)))
}

func TestNodeAccessors(t *testing.T) {
	n := nestutils.List(nestutils.Leaf("a"), nestutils.List[string]())
	require.False(t, n.IsLeaf())
	require.Len(t, n.Children(), 2)
	require.True(t, n.Children()[0].IsLeaf())
	require.Equal(t, "a", n.Children()[0].Value())
	require.Equal(t, "", n.Value())
}

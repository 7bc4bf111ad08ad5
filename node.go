package nestutils

// Node is a typed nested sequence: either a leaf holding a value or a list of child nodes.
type Node[T any] struct {
	value    T
	children []Node[T]
	leaf     bool
}

// Leaf creates a leaf node.
func Leaf[T any](v T) Node[T] {
	return Node[T]{value: v, leaf: true}
}

// List creates a list node.
func List[T any](children ...Node[T]) Node[T] {
	return Node[T]{children: children}
}

// IsLeaf reports whether n is a leaf.
func (n Node[T]) IsLeaf() bool {
	return n.leaf
}

// Value returns the value of a leaf node, or the zero value for a list.
func (n Node[T]) Value() T {
	return n.value
}

// Children returns the children of a list node.
func (n Node[T]) Children() []Node[T] {
	return n.children
}

// FlattenNodes returns the leaf values under root in depth-first left-to-right order.
// A leaf root yields a single value.
func FlattenNodes[T any](root Node[T]) []T {
	if root.leaf {
		return []T{root.value}
	}

	type nodeFrame struct {
		nodes []Node[T]
		i     int
	}

	out := make([]T, 0, len(root.children))
	stack := []nodeFrame{{nodes: root.children}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == len(top.nodes) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.nodes[top.i]
		top.i++
		if n.leaf {
			out = append(out, n.value)
			continue
		}
		stack = append(stack, nodeFrame{nodes: n.children})
	}
	return out
}

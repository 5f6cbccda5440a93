// internal/scene/walk.go
package scene

import "reflect"

// WalkFunc is called for every node with its parent (nil for the root).
// Returning false skips the node's children.
type WalkFunc func(n, parent Node) bool

// Walk visits the tree depth-first, parents before children.
func Walk(root Node, fn WalkFunc) {
	walk(root, nil, fn)
}

func walk(n, parent Node, fn WalkFunc) {
	if n == nil {
		return
	}
	if !fn(n, parent) {
		return
	}
	for _, c := range n.Children() {
		walk(c, n, fn)
	}
}

// FindAll returns all nodes of the given kind in walk order.
func FindAll(root Node, kind Kind) []Node {
	var out []Node
	Walk(root, func(n, _ Node) bool {
		if n.Kind() == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the tree.
func Count(root Node) int {
	count := 0
	Walk(root, func(Node, Node) bool {
		count++
		return true
	})
	return count
}

// Parent returns the parent of target, or nil when target is the root or absent.
func Parent(root, target Node) Node {
	var found Node
	Walk(root, func(n, parent Node) bool {
		if n == target {
			found = parent
			return false
		}
		return found == nil
	})
	return found
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

package huffman

import "fmt"

// Node is a node in a Huffman tree.
//
// A leaf holds a symbol and its count.
// A branch holds exactly two children and the sum of their weights.
// Nodes are immutable once created;
// merging two nodes builds a new parent and leaves the children untouched.
type Node[S comparable] struct {
	id     int
	weight int

	// Set only for leaves.
	symbol S

	// Both nil for leaves, both non-nil for branches.
	left, right *Node[S]
}

func newLeaf[S comparable](id int, f Frequency[S]) *Node[S] {
	return &Node[S]{id: id, weight: f.Count, symbol: f.Symbol}
}

// merge builds a branch with left and right as its children.
func merge[S comparable](id int, left, right *Node[S]) *Node[S] {
	return &Node[S]{
		id:     id,
		weight: left.weight + right.weight,
		left:   left,
		right:  right,
	}
}

// before reports whether a should be merged before b:
// lighter nodes first, and older nodes first among equals.
func before[S comparable](a, b *Node[S]) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.id < b.id
}

// ID is the creation order of this node within its build.
// Leaves are numbered first, in frequency order,
// followed by branches in the order they were merged.
func (n *Node[S]) ID() int { return n.id }

// Weight is the count of a leaf, or the sum of the counts below a branch.
func (n *Node[S]) Weight() int { return n.weight }

// IsLeaf reports whether this node holds a symbol.
func (n *Node[S]) IsLeaf() bool { return n.left == nil }

// Symbol returns the symbol held by a leaf.
// The second return value is false for branches.
func (n *Node[S]) Symbol() (s S, ok bool) {
	if !n.IsLeaf() {
		return s, false
	}
	return n.symbol, true
}

// Left returns the child reached with a 0 bit, or nil for leaves.
func (n *Node[S]) Left() *Node[S] { return n.left }

// Right returns the child reached with a 1 bit, or nil for leaves.
func (n *Node[S]) Right() *Node[S] { return n.right }

// Leaves reports the number of leaves at or below this node.
func (n *Node[S]) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.left.Leaves() + n.right.Leaves()
}

// Equal reports whether n and o have the same shape,
// with the same IDs, weights, and symbols at every position.
func (n *Node[S]) Equal(o *Node[S]) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.id != o.id || n.weight != o.weight || n.IsLeaf() != o.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return n.symbol == o.symbol
	}
	return n.left.Equal(o.left) && n.right.Equal(o.right)
}

// String prints the tree in a compact nested form:
// leaves as "symbol:weight", branches as "(left right):weight".
func (n *Node[S]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%v:%d", n.symbol, n.weight)
	}
	return fmt.Sprintf("(%v %v):%d", n.left, n.right, n.weight)
}

// WeightedPathLength is the sum of weight × depth over all leaves below root.
// This is the number of bits needed to encode the input root was built from.
//
// A tree with a single leaf counts that leaf at depth 1
// since its symbol still needs a one-bit code.
func WeightedPathLength[S comparable](root *Node[S]) int {
	if root == nil {
		return 0
	}
	if root.IsLeaf() {
		return root.weight
	}

	var walk func(*Node[S], int) int
	walk = func(n *Node[S], depth int) int {
		if n.IsLeaf() {
			return n.weight * depth
		}
		return walk(n.left, depth+1) + walk(n.right, depth+1)
	}
	return walk(root, 0)
}

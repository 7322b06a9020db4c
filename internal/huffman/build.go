package huffman

import "container/heap"

// Build builds a Huffman tree for the given frequencies in one go.
//
// freqs must be non-empty, with positive counts and unique symbols.
// Use Count to build a valid list from an input sequence.
//
// With a single frequency, the tree is a lone leaf.
// Otherwise, the two lightest nodes are repeatedly merged
// into a new branch until only one node, the root, remains.
// The first node picked becomes the left child.
// See the package documentation for how ties are broken.
//
// This produces the same tree as running a Session to completion.
func Build[S comparable](freqs []Frequency[S]) (*Node[S], error) {
	if err := validate(freqs); err != nil {
		return nil, err
	}

	// Fill the heap with leaf nodes for the user-provided elements.
	nodes := make(nodeHeap[S], len(freqs))
	for i, f := range freqs {
		nodes[i] = newLeaf(i, f)
	}
	heap.Init(&nodes)

	nextID := len(freqs)
	for len(nodes) > 1 {
		left := heap.Pop(&nodes).(*Node[S])
		right := heap.Pop(&nodes).(*Node[S])
		heap.Push(&nodes, merge(nextID, left, right))
		nextID++
	}

	return nodes[0], nil
}

type nodeHeap[S comparable] []*Node[S]

func (ns nodeHeap[S]) Len() int { return len(ns) }

func (ns nodeHeap[S]) Less(i, j int) bool {
	return before(ns[i], ns[j])
}

func (ns nodeHeap[S]) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap[S]) Push(e any) {
	*ns = append(*ns, e.(*Node[S]))
}

func (ns *nodeHeap[S]) Pop() any {
	n := len(*ns) - 1
	v := (*ns)[n]
	*ns = (*ns)[:n]
	return v
}

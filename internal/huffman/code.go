package huffman

// CodeTable maps each symbol to its code:
// a non-empty string of '0' and '1' characters.
//
// Codes are prefix-free:
// no code in a table is a prefix of another code in the same table.
type CodeTable[S comparable] map[S]string

// GenerateCodes assigns a code to every leaf below root.
//
// Each code is the path from the root to the leaf,
// with '0' for every left turn and '1' for every right turn.
// A tree that is a single leaf has no edges;
// its symbol gets the code "0".
//
// Returns an empty table for a nil root.
func GenerateCodes[S comparable](root *Node[S]) CodeTable[S] {
	codes := make(CodeTable[S])
	if root == nil {
		return codes
	}

	if root.IsLeaf() {
		codes[root.symbol] = "0"
		return codes
	}

	// Shared across siblings; copied into a string at every leaf.
	var path []byte
	var walk func(*Node[S])
	walk = func(n *Node[S]) {
		if n.IsLeaf() {
			codes[n.symbol] = string(path)
			return
		}

		path = append(path, '0')
		walk(n.left)
		path[len(path)-1] = '1'
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(root)

	return codes
}

// Package huffman implements binary Huffman coding over arbitrary comparable
// symbols.
//
// The pipeline is:
//
//	Count -> Build (or Start + Session.Step) -> GenerateCodes -> Encode
//
// Decode reverses Encode given the same tree.
//
// Trees are built with a deterministic tie-break:
// when two candidates have the same weight,
// the one created first (lower ID) is merged first
// and becomes the left child.
// This makes the tree for a given frequency list reproducible,
// whether it was built all at once or one merge at a time.
package huffman

import (
	"fmt"
	"sort"
)

// Frequency is the number of times a symbol appears in the input.
type Frequency[S comparable] struct {
	Symbol S
	Count  int
}

func (f Frequency[S]) String() string {
	return fmt.Sprintf("%v:%d", f.Symbol, f.Count)
}

// Count tallies the occurrences of each distinct symbol in input.
//
// The result is sorted by ascending count.
// Symbols with the same count are ordered by their first appearance in input.
// Returns nil for empty input.
func Count[S comparable](input []S) []Frequency[S] {
	if len(input) == 0 {
		return nil
	}

	index := make(map[S]int)
	var freqs []Frequency[S]
	for _, s := range input {
		i, ok := index[s]
		if !ok {
			i = len(freqs)
			index[s] = i
			freqs = append(freqs, Frequency[S]{Symbol: s})
		}
		freqs[i].Count++
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count < freqs[j].Count
	})
	return freqs
}

// Total reports the sum of all counts in freqs.
// For frequencies returned by Count, this is the input length.
func Total[S comparable](freqs []Frequency[S]) int {
	var n int
	for _, f := range freqs {
		n += f.Count
	}
	return n
}

// validate reports an error if freqs can't seed a tree.
func validate[S comparable](freqs []Frequency[S]) error {
	if len(freqs) == 0 {
		return fmt.Errorf("%w: no frequencies", ErrInvalidInput)
	}

	seen := make(map[S]struct{}, len(freqs))
	for i, f := range freqs {
		if f.Count <= 0 {
			return fmt.Errorf("%w: frequency %d (%v) has non-positive count %d",
				ErrInvalidInput, i, f.Symbol, f.Count)
		}
		if _, dup := seen[f.Symbol]; dup {
			return fmt.Errorf("%w: symbol %v appears more than once", ErrInvalidInput, f.Symbol)
		}
		seen[f.Symbol] = struct{}{}
	}
	return nil
}

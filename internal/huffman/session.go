package huffman

import (
	"sort"

	"github.com/abhinav/huffstep/internal/stringobj"
)

// Session is a Huffman tree build in progress,
// advanced one merge at a time.
//
// Sessions are values.
// Step returns a new Session and leaves the receiver unchanged,
// so earlier states remain valid and may be kept around
// (for example, to replay a build).
//
// The zero value is a finished session with no tree.
type Session[S comparable] struct {
	// Unmerged nodes in merge order: lightest first, then oldest first.
	// Empty once the build is finished.
	candidates []*Node[S]

	// Root of the finished tree. nil until the build finishes.
	finished *Node[S]

	nextID int
	steps  int
}

// Start begins a new build for the given frequencies.
// It accepts the same inputs as Build.
//
// If there's only one frequency, the session is finished right away.
func Start[S comparable](freqs []Frequency[S]) (Session[S], error) {
	if err := validate(freqs); err != nil {
		return Session[S]{}, err
	}

	candidates := make([]*Node[S], len(freqs))
	for i, f := range freqs {
		candidates[i] = newLeaf(i, f)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return before(candidates[i], candidates[j])
	})

	return Session[S]{
		nextID:     len(freqs),
		candidates: candidates,
	}.settle(), nil
}

// Step merges the two lightest candidates into a new branch
// and returns the resulting session.
// The receiver is not modified.
//
// Step on a finished session returns it unchanged.
func (s Session[S]) Step() Session[S] {
	if s.Finished() {
		return s
	}

	left, right := s.candidates[0], s.candidates[1]
	parent := merge(s.nextID, left, right)

	// Copy so that the receiver's candidates aren't disturbed.
	rest := s.candidates[2:]
	candidates := make([]*Node[S], 0, len(rest)+1)
	candidates = append(candidates, rest...)

	i := sort.Search(len(candidates), func(i int) bool {
		return before(parent, candidates[i])
	})
	candidates = append(candidates, nil)
	copy(candidates[i+1:], candidates[i:])
	candidates[i] = parent

	return Session[S]{
		candidates: candidates,
		nextID:     s.nextID + 1,
		steps:      s.steps + 1,
	}.settle()
}

// settle moves the last remaining candidate into the finished slot.
func (s Session[S]) settle() Session[S] {
	if len(s.candidates) == 1 {
		s.finished = s.candidates[0]
		s.candidates = nil
	}
	return s
}

// Run steps the session until it finishes and returns the root of the tree.
func (s Session[S]) Run() *Node[S] {
	for !s.Finished() {
		s = s.Step()
	}
	return s.Root()
}

// Finished reports whether there's nothing left to merge.
func (s Session[S]) Finished() bool {
	return len(s.candidates) <= 1
}

// Root returns the finished tree, or nil if the build is still in progress.
func (s Session[S]) Root() *Node[S] {
	return s.finished
}

// Candidates returns the nodes that haven't been merged yet,
// in the order they will be merged.
// This is empty once the build is finished.
//
// The returned slice is a copy and may be modified freely.
func (s Session[S]) Candidates() []*Node[S] {
	if len(s.candidates) == 0 {
		return nil
	}
	out := make([]*Node[S], len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Steps reports the number of merges performed so far.
func (s Session[S]) Steps() int { return s.steps }

// Remaining reports the number of merges left until the tree is finished.
func (s Session[S]) Remaining() int {
	if s.Finished() {
		return 0
	}
	return len(s.candidates) - 1
}

func (s Session[S]) String() string {
	var b stringobj.Builder
	b.Put("steps", s.steps)
	b.Put("remaining", s.Remaining())
	b.Put("candidates", s.candidates)
	b.Put("root", s.finished)
	return b.String()
}

package engine

import (
	"github.com/abhinav/huffstep/internal/huffman"
	"github.com/abhinav/huffstep/internal/stringobj"
)

// Snapshot is the state of an Engine at a point in time.
// It holds everything a renderer needs to draw the build.
//
// Snapshots share immutable tree nodes with the Engine
// but are otherwise independent of it.
type Snapshot struct {
	// Text being coded.
	Text string

	// Symbols is the number of symbols in Text.
	Symbols int

	// Frequencies of the distinct symbols in Text,
	// in ascending order of count.
	Frequencies []huffman.Frequency[string]

	// Candidates is the forest of a stepwise build in progress,
	// in the order they will be merged.
	// Empty before the build starts and after it finishes.
	Candidates []*huffman.Node[string]

	// Root of the finished tree, or nil.
	Root *huffman.Node[string]

	// Codes for each symbol. Set once the tree is finished.
	Codes huffman.CodeTable[string]

	// Result of encoding Text. Set once the tree is finished.
	Result *huffman.Result

	// Steps is the number of merges performed so far.
	Steps int

	// Done reports that there's nothing left to do:
	// the tree is finished, or there was no text to begin with.
	Done bool
}

func (e *Engine) snapshot() *Snapshot {
	snap := Snapshot{
		Text:        e.text,
		Symbols:     len(e.symbols),
		Frequencies: e.freqs,
		Root:        e.root,
		Codes:       e.codes,
		Result:      e.result,
		Done:        len(e.freqs) == 0 || e.root != nil,
	}

	switch {
	case e.root != nil:
		// An eager build performs every merge at once.
		snap.Steps = len(e.freqs) - 1
	case e.started:
		snap.Steps = e.session.Steps()
		snap.Candidates = e.session.Candidates()
	}

	return &snap
}

func (s *Snapshot) String() string {
	var b stringobj.Builder
	b.PutQuoted("text", s.Text)
	b.Put("steps", s.Steps)
	b.Put("candidates", len(s.Candidates))
	b.Put("done", s.Done)
	if s.Result != nil {
		b.Put("bits", s.Result.EncodedBitLength)
	}
	return b.String()
}

// Package engine drives the Huffman coding pipeline for a piece of text.
//
// An Engine holds the text being coded and everything derived from it:
// the symbol frequencies, the tree (finished or in progress),
// the code table, and the encoded result.
// Changing the text throws all of that away.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/abhinav/huffstep/internal/huffman"
	"github.com/abhinav/huffstep/internal/log"
	"github.com/abhinav/huffstep/internal/symbols"
)

// Config configures an Engine.
type Config struct {
	// Split specifies how text is broken into symbols.
	// Defaults to symbols.Rune.
	Split symbols.Mode

	// Log receives debug messages about each build.
	// Defaults to log.Discard.
	Log *log.Logger
}

// Engine codes a piece of text,
// either all at once with Build, or one merge at a time with Step.
//
// Engine is not safe for concurrent use.
type Engine struct {
	split symbols.Mode
	log   *log.Logger

	text    string
	symbols []string
	freqs   []huffman.Frequency[string]

	// started is set once a stepwise build exists for the current text.
	started bool
	session huffman.Session[string]

	// Set once the tree is finished.
	root   *huffman.Node[string]
	codes  huffman.CodeTable[string]
	result *huffman.Result
}

// New builds an Engine with no text.
func New(cfg Config) *Engine {
	logger := cfg.Log
	if logger == nil {
		logger = log.Discard
	}
	return &Engine{
		split:   cfg.Split,
		log:     logger,
		symbols: []string{},
	}
}

// Text reports the text currently being coded.
func (e *Engine) Text() string { return e.text }

// SetText changes the text being coded.
//
// If the text differs from the current text,
// any build in progress and all results for the old text are discarded.
// Setting the same text again keeps the current state.
func (e *Engine) SetText(text string) {
	if text == e.text {
		return
	}

	if e.started && e.root == nil {
		e.log.Debug("discarding build", "steps", e.session.Steps())
	}

	e.text = text
	e.symbols = symbols.Split(text, e.split)
	e.freqs = huffman.Count(e.symbols)
	e.started = false
	e.session = huffman.Session[string]{}
	e.root = nil
	e.codes = nil
	e.result = nil

	e.log.Debug("set text",
		"symbols", len(e.symbols),
		"distinct", len(e.freqs),
		"split", e.split.String())
}

// Build builds the complete tree for the current text in one go,
// and returns the finished snapshot.
//
// If a stepwise build is in progress, Build runs it to completion
// instead of starting over; the tree is the same either way.
// Build on empty text returns an empty, finished snapshot.
func (e *Engine) Build() (*Snapshot, error) {
	if len(e.freqs) == 0 || e.root != nil {
		return e.snapshot(), nil
	}

	var root *huffman.Node[string]
	if e.started {
		for !e.session.Finished() {
			e.session = e.session.Step()
		}
		root = e.session.Root()
		e.log.Debug("finished stepwise build", "steps", e.session.Steps())
	} else {
		var err error
		root, err = huffman.Build(e.freqs)
		if err != nil {
			return nil, fmt.Errorf("build tree: %w", err)
		}
		e.log.Debug("built tree", "weight", root.Weight(), "leaves", root.Leaves())
	}

	return e.finish(root)
}

// Step advances a stepwise build and returns the new snapshot.
//
// The first call for a text starts the build,
// placing one leaf per distinct symbol in the candidate list.
// Each following call merges the two lightest candidates.
// Once the tree is finished, the code table and encoded result
// are computed, and further calls to Step change nothing.
func (e *Engine) Step() (*Snapshot, error) {
	if len(e.freqs) == 0 || e.root != nil {
		return e.snapshot(), nil
	}

	if !e.started {
		session, err := huffman.Start(e.freqs)
		if err != nil {
			return nil, fmt.Errorf("start build: %w", err)
		}
		e.started = true
		e.session = session
		e.log.Debug("started build", "candidates", len(session.Candidates()))
	} else {
		e.session = e.session.Step()
		e.log.Debug("merged",
			"step", e.session.Steps(),
			"remaining", e.session.Remaining())
	}

	if root := e.session.Root(); root != nil {
		return e.finish(root)
	}
	return e.snapshot(), nil
}

// Snapshot reports the current state without advancing any build.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot()
}

// finish derives codes and the encoded result from a finished tree.
func (e *Engine) finish(root *huffman.Node[string]) (*Snapshot, error) {
	codes := huffman.GenerateCodes(root)
	result, err := huffman.Encode(e.symbols, codes)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	e.root = root
	e.codes = codes
	e.result = result
	for _, f := range e.freqs {
		e.log.Debug("code", log.Quoted("symbol", f.Symbol), "count", f.Count, "code", codes[f.Symbol])
	}
	e.log.Debug("encoded",
		slog.Int("bits", result.EncodedBitLength),
		slog.Int("baseline", result.OriginalBitLength),
		log.OmitEmpty(slog.Int, "steps", e.session.Steps()))
	return e.snapshot(), nil
}

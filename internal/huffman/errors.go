package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates that a build was requested
	// with no frequencies, a non-positive count, or duplicate symbols.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLookup indicates that a symbol being encoded
	// has no entry in the code table.
	ErrLookup = errors.New("symbol not in code table")

	// ErrDecodeDesync indicates that a bit string
	// does not correspond to a sequence of codes in the tree.
	ErrDecodeDesync = errors.New("decode desync")
)

// LookupError is returned by Encode
// when the input holds a symbol the code table doesn't know.
type LookupError struct {
	Symbol any // offending symbol
	Index  int // position of the symbol in the input
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("symbol %v at index %d: %v", e.Symbol, e.Index, ErrLookup)
}

// Unwrap returns ErrLookup.
func (e *LookupError) Unwrap() error { return ErrLookup }

// DecodeError is returned by Decode when the bit string is corrupt.
type DecodeError struct {
	// Offset is the index into the bit string where decoding failed.
	// For truncated input, this is the length of the bit string.
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at bit %d: %v", ErrDecodeDesync, e.Offset, e.Reason)
}

// Unwrap returns ErrDecodeDesync.
func (e *DecodeError) Unwrap() error { return ErrDecodeDesync }

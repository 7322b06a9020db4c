package huffman

import (
	"strconv"
	"strings"
)

// BaselineBitsPerSymbol is the fixed width each symbol is assumed to take
// without compression, for the purposes of reporting.
// It matches one byte per character of ASCII text.
//
// This is a reporting convention and plays no part in coding.
const BaselineBitsPerSymbol = 8

// Result is the outcome of encoding a sequence of symbols.
type Result struct {
	// Bits is the encoded input as a string of '0' and '1'.
	Bits string

	// Symbols is the number of symbols that were encoded.
	Symbols int

	// OriginalBitLength is the size of the input at
	// BaselineBitsPerSymbol bits per symbol.
	OriginalBitLength int

	// EncodedBitLength is len(Bits).
	EncodedBitLength int
}

// Reduction reports the percentage by which encoding shrank the input
// relative to the fixed-width baseline.
// Returns 0 for empty input.
func (r *Result) Reduction() float64 {
	if r.OriginalBitLength == 0 {
		return 0
	}
	return 100 * (1 - float64(r.EncodedBitLength)/float64(r.OriginalBitLength))
}

// AverageCodeLength reports the mean number of bits spent per symbol.
// Returns 0 for empty input.
func (r *Result) AverageCodeLength() float64 {
	if r.Symbols == 0 {
		return 0
	}
	return float64(r.EncodedBitLength) / float64(r.Symbols)
}

// Encode replaces each symbol of input with its code from table.
//
// table must have been generated from a tree
// built from the frequencies of this input.
// Encode fails with a *LookupError if a symbol has no code.
func Encode[S comparable](input []S, table CodeTable[S]) (*Result, error) {
	var bits strings.Builder
	for i, s := range input {
		code, ok := table[s]
		if !ok {
			return nil, &LookupError{Symbol: s, Index: i}
		}
		bits.WriteString(code)
	}

	return &Result{
		Bits:              bits.String(),
		Symbols:           len(input),
		OriginalBitLength: len(input) * BaselineBitsPerSymbol,
		EncodedBitLength:  bits.Len(),
	}, nil
}

// Decode reverses Encode, reading codes off the bit string
// by walking root from the top for each symbol.
//
// It fails with a *DecodeError if bits holds anything other than
// '0' and '1', if a path leads nowhere,
// or if bits ends in the middle of a code.
func Decode[S comparable](bits string, root *Node[S]) ([]S, error) {
	if len(bits) == 0 {
		return nil, nil
	}
	if root == nil {
		return nil, &DecodeError{Offset: 0, Reason: "no tree to decode with"}
	}

	var out []S
	if root.IsLeaf() {
		// Only one code: "0".
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return nil, &DecodeError{
					Offset: i,
					Reason: "single-symbol tree expects only 0 bits, got " + strconv.QuoteRune(rune(bits[i])),
				}
			}
			out = append(out, root.symbol)
		}
		return out, nil
	}

	n := root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			n = n.left
		case '1':
			n = n.right
		default:
			return nil, &DecodeError{Offset: i, Reason: "unexpected " + strconv.QuoteRune(rune(bits[i]))}
		}

		if n.IsLeaf() {
			out = append(out, n.symbol)
			n = root
		}
	}

	if n != root {
		return nil, &DecodeError{Offset: len(bits), Reason: "input ends in the middle of a code"}
	}
	return out, nil
}

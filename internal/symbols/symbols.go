// Package symbols splits text into the symbols that get Huffman coded.
package symbols

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Mode specifies what counts as one symbol.
type Mode int

const (
	// Rune treats each Unicode code point as a symbol.
	Rune Mode = iota

	// Byte treats each byte as a symbol.
	// Multi-byte characters are split into their encoded bytes.
	Byte

	// Grapheme treats each user-perceived character as a symbol.
	// For example, "e" followed by a combining accent is one symbol.
	Grapheme
)

var _modeNames = map[Mode]string{
	Rune:     "rune",
	Byte:     "byte",
	Grapheme: "grapheme",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if name, ok := _modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Set parses a mode name.
// This makes *Mode usable as a flag.Value.
func (m *Mode) Set(name string) error {
	for mode, n := range _modeNames {
		if strings.EqualFold(n, name) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown split mode %q: expected byte, rune, or grapheme", name)
}

// Split splits text into symbols according to mode.
// Returns nil for empty text.
func Split(text string, mode Mode) []string {
	if len(text) == 0 {
		return nil
	}

	switch mode {
	case Byte:
		out := make([]string, len(text))
		for i := 0; i < len(text); i++ {
			out[i] = text[i : i+1]
		}
		return out

	case Grapheme:
		out := make([]string, 0, len(text))
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			out = append(out, g.Str())
		}
		return out

	default:
		// Slice rather than convert runes
		// so that invalid UTF-8 survives unchanged.
		out := make([]string, 0, len(text))
		for len(text) > 0 {
			_, size := utf8.DecodeRuneInString(text)
			out = append(out, text[:size])
			text = text[size:]
		}
		return out
	}
}

// Join reverses Split.
func Join(syms []string) string {
	return strings.Join(syms, "")
}

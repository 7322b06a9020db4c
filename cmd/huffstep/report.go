package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhinav/huffstep/internal/engine"
	"github.com/abhinav/huffstep/internal/huffman"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numbers builds a printer that groups digits of large counts with commas.
func numbers() *message.Printer {
	return message.NewPrinter(language.English)
}

func formatInt(n int) string {
	return numbers().Sprintf("%d", n)
}

// report prints the results of a build in plain text.
type report struct {
	W io.Writer

	// Maximum number of encoded bits to print. 0 prints all of them.
	Bits int
}

// Step prints the candidate list of a build in progress on one line.
func (r *report) Step(snap *engine.Snapshot) {
	labels := make([]string, len(snap.Candidates))
	for i, n := range snap.Candidates {
		labels[i] = nodeLabel(n)
	}

	prefix := "start"
	if snap.Steps > 0 {
		prefix = "step " + strconv.Itoa(snap.Steps)
	}
	fmt.Fprintf(r.W, "%v: %v\n", prefix, strings.Join(labels, " "))
}

// Done prints everything known about a finished build.
func (r *report) Done(snap *engine.Snapshot) {
	if len(snap.Frequencies) == 0 {
		fmt.Fprintln(r.W, "nothing to encode")
		return
	}

	r.Frequencies(snap.Frequencies)
	fmt.Fprintln(r.W)
	r.Tree(snap.Root)
	fmt.Fprintln(r.W)
	r.Codes(snap.Frequencies, snap.Codes)
	if snap.Result != nil {
		fmt.Fprintln(r.W)
		r.Stats(snap.Result)
	}
}

// Frequencies prints a table of symbols and their counts,
// in the order they were given.
func (r *report) Frequencies(freqs []huffman.Frequency[string]) {
	rows := [][]string{{"symbol", "count"}}
	for _, f := range freqs {
		rows = append(rows, []string{displaySymbol(f.Symbol), formatInt(f.Count)})
	}
	writeTable(r.W, rows)
}

// Tree prints an outline of the tree with one node per line.
// Each node is prefixed with its path from the root.
func (r *report) Tree(root *huffman.Node[string]) {
	if root == nil {
		return
	}
	if root.IsLeaf() {
		// A lone symbol is still assigned a one bit code.
		fmt.Fprintf(r.W, "0 %v\n", nodeLabel(root))
		return
	}
	writeTree(r.W, root, "", 0)
}

func writeTree(w io.Writer, n *huffman.Node[string], path string, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsLeaf() {
		fmt.Fprintf(w, "%v%v %v\n", indent, path, nodeLabel(n))
		return
	}

	if len(path) == 0 {
		fmt.Fprintf(w, "*:%d\n", n.Weight())
	} else {
		fmt.Fprintf(w, "%v%v *:%d\n", indent, path, n.Weight())
	}
	writeTree(w, n.Left(), path+"0", depth+1)
	writeTree(w, n.Right(), path+"1", depth+1)
}

// Codes prints the code for each symbol, shortest codes first.
func (r *report) Codes(freqs []huffman.Frequency[string], codes huffman.CodeTable[string]) {
	sorted := slices.Clone(freqs)
	slices.SortStableFunc(sorted, func(a, b huffman.Frequency[string]) int {
		ca, cb := codes[a.Symbol], codes[b.Symbol]
		return cmp.Or(
			cmp.Compare(len(ca), len(cb)),
			strings.Compare(ca, cb),
		)
	})

	rows := [][]string{{"symbol", "code", "bits"}}
	for _, f := range sorted {
		code := codes[f.Symbol]
		rows = append(rows, []string{
			displaySymbol(f.Symbol),
			code,
			formatInt(f.Count * len(code)),
		})
	}
	writeTable(r.W, rows)
}

// Stats prints the encoded bits and how they compare to the baseline.
func (r *report) Stats(res *huffman.Result) {
	bits := res.Bits
	if r.Bits > 0 && len(bits) > r.Bits {
		bits = bits[:r.Bits] + "..."
	}

	rows := [][]string{
		{"encoded:", bits},
		{"original bits:", numbers().Sprintf("%d (%d symbols x %d)",
			res.OriginalBitLength, res.Symbols, huffman.BaselineBitsPerSymbol)},
		{"encoded bits:", formatInt(res.EncodedBitLength)},
		{"reduction:", strconv.FormatFloat(res.Reduction(), 'f', 2, 64) + "%"},
		{"bits per symbol:", strconv.FormatFloat(res.AverageCodeLength(), 'f', 2, 64)},
	}
	writeTable(r.W, rows)
}

// writeTable prints rows with each column padded to its widest cell.
// The last column is never padded.
func writeTable(w io.Writer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var line strings.Builder
	for _, row := range rows {
		line.Reset()
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			if i == len(row)-1 {
				line.WriteString(cell)
			} else {
				line.WriteString(runewidth.FillRight(cell, widths[i]))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

// nodeLabel is a variant of Node.String that quotes
// symbols which would otherwise be hard to read.
func nodeLabel(n *huffman.Node[string]) string {
	if sym, ok := n.Symbol(); ok {
		return displaySymbol(sym) + ":" + strconv.Itoa(n.Weight())
	}
	return "(" + nodeLabel(n.Left()) + " " + nodeLabel(n.Right()) + "):" +
		strconv.Itoa(n.Weight())
}

// displaySymbol returns the symbol as-is if it can be printed
// without confusion, and quoted otherwise.
func displaySymbol(s string) string {
	if !utf8.ValidString(s) {
		return strconv.Quote(s)
	}
	for _, r := range s {
		if r == '"' || unicode.IsSpace(r) || !unicode.IsGraphic(r) {
			return strconv.Quote(s)
		}
	}
	if len(s) == 0 {
		return `""`
	}
	return s
}

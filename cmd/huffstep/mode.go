package main

import (
	"flag"
	"fmt"
)

// buildMode specifies how the tree is built.
type buildMode string

const (
	// Build the whole tree at once and print the result.
	eagerMode buildMode = "eager"

	// Build the tree one merge at a time,
	// printing the candidates after each merge.
	stepMode buildMode = "step"
)

const _defaultMode = eagerMode

var _ flag.Value = (*buildMode)(nil)

func (m *buildMode) String() string {
	return string(*m)
}

func (m *buildMode) Set(s string) error {
	switch mode := buildMode(s); mode {
	case eagerMode, stepMode:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown mode %q: expected eager or step", s)
	}
}

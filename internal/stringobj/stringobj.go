// Package stringobj aids in writing String methods for objects
// with a JSON-like output.
package stringobj

import (
	"fmt"
	"reflect"
	"strings"
)

// Builder helps build String functions for objects that skip zero-value
// attributes.
//
// Attributes are printed in the order they were added.
type Builder struct {
	attrs []string
}

// Put adds the given attribute-value pair to the builder, skipping it if the
// value is a zero value.
func (b *Builder) Put(name string, value any) {
	if value == nil {
		return
	}
	if v := reflect.ValueOf(value); v.IsZero() {
		return
	}
	b.attrs = append(b.attrs, fmt.Sprintf("%s: %v", name, value))
}

// PutQuoted is a variant of Put for strings that may contain
// spaces or punctuation.
// The value is printed with Go quoting rules.
func (b *Builder) PutQuoted(name, value string) {
	if len(value) == 0 {
		return
	}
	b.attrs = append(b.attrs, fmt.Sprintf("%s: %q", name, value))
}

// String returns the final string representation.
func (b *Builder) String() string {
	return "{" + strings.Join(b.attrs, ", ") + "}"
}

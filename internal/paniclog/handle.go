// Package paniclog provides a handler for panicking code
// that logs the panic to an io.Writer.
package paniclog

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/multierr"
)

// Handle handles a panic value, logging it and the current stack
// to the given io.Writer. Returns the error version of the panic, if any.
//
// Panics with error values are wrapped so that errors.Is and errors.As
// can still match them.
func Handle(pval any, w io.Writer) error {
	if pval == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	switch pval := pval.(type) {
	case string:
		return errors.New(pval)
	case error:
		return fmt.Errorf("panic: %w", pval)
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers a panic and appends it into the given error pointer,
// keeping any error that was already there.
//
// It must be called directly with defer.
func Recover(err *error, w io.Writer) {
	if pval := recover(); pval != nil {
		*err = multierr.Append(*err, Handle(pval, w))
	}
}

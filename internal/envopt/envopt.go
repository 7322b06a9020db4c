// Package envopt loads configuration from environment variables.
package envopt

import (
	"flag"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/multierr"
)

// Value is a receiver for an environment variable's value.
type Value interface {
	Set(value string) error
}

var _ Value = flag.Value(nil) // interface matching

// Loader loads environment variables into user-specified variables.
type Loader struct {
	Getenv func(string) string // == os.Getenv

	once   sync.Once
	names  []string // in registration order
	values map[string]Value
}

func (l *Loader) init() {
	l.once.Do(func() { l.values = make(map[string]Value) })
}

// Var specifies that the given environment variable should be loaded into
// the provided Value object.
func (l *Loader) Var(val Value, name string) {
	l.init()

	if _, ok := l.values[name]; !ok {
		l.names = append(l.names, name)
	}
	l.values[name] = val
}

// StringVar specifies that the given environment variable should be loaded
// as a string.
func (l *Loader) StringVar(dest *string, name string) {
	l.Var((*stringValue)(dest), name)
}

// Load reads all previously specified environment variables
// and fills their values.
// Variables that are unset or empty are left alone.
//
// All variables are attempted even if some fail;
// the returned error combines every failure.
func (l *Loader) Load() (err error) {
	for _, name := range l.names {
		value := l.Getenv(name)
		if len(value) == 0 {
			continue
		}

		if serr := l.values[name].Set(unquote(value)); serr != nil {
			err = multierr.Append(err, fmt.Errorf("load $%v: %w", name, serr))
		}
	}
	return err
}

// unquote strips one level of quoting,
// leaving the value as-is if it isn't a valid quoted string.
func unquote(s string) string {
	if len(s) > 0 {
		switch s[0] {
		case '"', '\'', '`':
			if o, err := strconv.Unquote(s); err == nil {
				return o
			}
		}
	}
	return s
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*(*string)(v) = s
	return nil
}

// Package envtest provides a fake environment variable backend
// for testing purposes.
package envtest

import (
	"fmt"
)

// Empty is an environment with no variables.
var Empty = Env{}

// Env represents a fake environment.
type Env struct {
	items map[string]string
}

// Pairs builds a new fake environment with the provided pairs of items. There
// must be exactly an even number of items in the list.
func Pairs(pairs ...string) (*Env, error) {
	return Empty.With(pairs...)
}

// MustPairs builds an Env with the provided items, panicking if it fails.
func MustPairs(items ...string) *Env {
	e, err := Pairs(items...)
	if err != nil {
		panic(err)
	}
	return e
}

// With builds a copy of this environment
// with the provided pairs of items added or replaced.
// The original environment is unchanged.
func (e *Env) With(pairs ...string) (*Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%d items in environment are not even", len(pairs))
	}

	m := make(map[string]string, e.len()+len(pairs)/2)
	if e != nil {
		for k, v := range e.items {
			m[k] = v
		}
	}
	for i := 0; i < len(pairs); i += 2 {
		k, v := pairs[i], pairs[i+1]
		m[k] = v
	}
	return &Env{m}, nil
}

func (e *Env) len() int {
	if e == nil {
		return 0
	}
	return len(e.items)
}

// Getenv is an analog for the os.Getenv operation.
func (e *Env) Getenv(k string) string {
	if e == nil {
		return ""
	}

	return e.items[k]
}

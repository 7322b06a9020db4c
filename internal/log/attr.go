package log

import "log/slog"

// OmitEmpty builds an attribute using the given constructor function,
// but if the value is the zero value for its type,
// it skips the attribute.
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, name string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{} // ignore
	}
	return fn(name, value)
}

// Quoted builds a string attribute that is always quoted,
// even if it holds no special characters.
// Use this for user-provided text like symbols.
func Quoted(name, value string) slog.Attr {
	return slog.Any(name, quoted(value))
}

type quoted string

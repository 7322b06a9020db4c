package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// handler writes one line per record:
//
//	LEVEL [name] message key=value key=value
//
// Levels and messages are highlighted if Color is set.
type handler struct {
	W     io.Writer
	Level Level
	Color bool

	name  string
	attrs []slog.Attr // from WithAttrs, already qualified with group
	group []byte
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return lvl >= h.Level
}

var (
	_reset = []byte("\x1b[0m")
	_bold  = []byte("\x1b[1m")
	_dim   = []byte("\x1b[2m")

	_boldDim          = []byte("\x1b[2;1m")
	_brightBoldRed    = []byte("\x1b[91;1m")
	_brightBoldYellow = []byte("\x1b[93;1m")
	_brightBoldGreen  = []byte("\x1b[92;1m")
)

// Serializes writes from loggers sharing a writer.
var _writeMu sync.Mutex

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	buf := *getBuf()
	defer putBuf(&buf)

	lvl, err := rec.Level.MarshalText()
	if err != nil {
		return err
	}

	if h.Color {
		switch {
		case rec.Level >= slog.LevelError:
			buf = append(buf, _brightBoldRed...)
		case rec.Level >= slog.LevelWarn:
			buf = append(buf, _brightBoldYellow...)
		case rec.Level >= slog.LevelInfo:
			buf = append(buf, _brightBoldGreen...)
		default:
			buf = append(buf, _boldDim...)
		}
	}
	buf = append(buf, lvl...)
	buf = h.appendEscape(buf, _reset)
	buf = append(buf, ' ')

	if len(h.name) > 0 {
		buf = append(buf, '[')
		buf = append(buf, h.name...)
		buf = append(buf, "] "...)
	}

	buf = h.appendEscape(buf, _bold)
	buf = append(buf, strings.TrimRight(rec.Message, "\n")...)
	buf = h.appendEscape(buf, _reset)

	for _, a := range h.attrs {
		buf = h.appendAttr(buf, nil, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.group, a)
		return true
	})

	buf = append(buf, '\n')

	_writeMu.Lock()
	defer _writeMu.Unlock()
	_, err = h.W.Write(buf)
	return err
}

func (h *handler) appendEscape(buf, esc []byte) []byte {
	if h.Color {
		buf = append(buf, esc...)
	}
	return buf
}

func (h *handler) appendAttr(buf []byte, group []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := group[:len(group):len(group)]
		if len(group) > 0 {
			group = append(group, '.')
		}
		group = append(group, a.Key...)
		for _, a := range a.Value.Group() {
			buf = h.appendAttr(buf, group, a)
		}

		return buf
	}

	buf = append(buf, ' ')
	buf = h.appendEscape(buf, _dim)
	if len(group) > 0 {
		buf = append(buf, group...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	buf = h.appendEscape(buf, _reset)

	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); needsQuote(s) {
			buf = strconv.AppendQuote(buf, s)
		} else {
			buf = append(buf, s...)
		}

	case slog.KindInt64:
		buf = strconv.AppendInt(buf, a.Value.Int64(), 10)

	case slog.KindUint64:
		buf = strconv.AppendUint(buf, a.Value.Uint64(), 10)

	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, a.Value.Float64(), 'f', -1, 64)

	case slog.KindBool:
		buf = strconv.AppendBool(buf, a.Value.Bool())

	case slog.KindDuration:
		buf = append(buf, a.Value.Duration().String()...)

	case slog.KindTime:
		buf = append(buf, a.Value.Time().String()...)

	case slog.KindAny:
		if q, ok := a.Value.Any().(quoted); ok {
			buf = strconv.AppendQuote(buf, string(q))
		} else {
			buf = fmt.Appendf(buf, "%v", a.Value.Any())
		}
	}

	return buf
}

func needsQuote(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '"' || r == '=' || !strconv.IsPrint(r) {
			return true
		}
	}
	return false
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.attrs = append(out.attrs[:len(out.attrs):len(out.attrs)], qualify(h.group, attrs)...)
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	out := *h
	group := make([]byte, 0, len(h.group)+1+len(name))
	group = append(group, h.group...)
	if len(group) > 0 {
		group = append(group, '.')
	}
	out.group = append(group, name...)
	return &out
}

// qualify nests attrs under the given dotted group name.
func qualify(group []byte, attrs []slog.Attr) []slog.Attr {
	if len(group) == 0 {
		return attrs
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return []slog.Attr{slog.Group(string(group), args...)}
}

var _bufPool = sync.Pool{
	New: func() any {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}

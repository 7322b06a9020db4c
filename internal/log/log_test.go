package log

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	t.Run("default level", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Info, New(io.Discard).Level())
	})

	tests := []struct {
		desc  string
		level Level
		want  string
	}{
		{
			desc:  "debug",
			level: Debug,
			want:  unlines("DEBUG debug", "INFO info", "ERROR error"),
		},
		{
			desc:  "info",
			level: Info,
			want:  unlines("INFO info", "ERROR error"),
		},
		{
			desc:  "error",
			level: Error,
			want:  unlines("ERROR error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			log := New(&buff).WithLevel(tt.level)
			assert.Equal(t, tt.level, log.Level())

			log.Debug("debug")
			log.Info("info")
			log.Error("error")

			assert.Equal(t, tt.want, buff.String())
		})
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff).WithName("foo")

	log.Info("info")
	log.WithName("bar").Error("error")

	assert.Equal(t, unlines(
		"INFO [foo] info",
		"ERROR [foo.bar] error",
	), buff.String())
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff)

	log.Info("build",
		"step", 2,
		"weight", int64(10),
		"ratio", 81.25,
		"done", true,
		"text", "a b",
		"empty", "",
		Quoted("symbol", "A"),
		OmitEmpty(slog.Int, "skipped", 0),
		OmitEmpty(slog.Int, "kept", 3),
	)
	log.With("mode", "step").WithGroup("tree").Info("grouped", "root", 4)
	log.Info("nested", slog.Group("stats", "bits", 15))

	assert.Equal(t, unlines(
		`INFO build step=2 weight=10 ratio=81.25 done=true text="a b" empty="" symbol="A" kept=3`,
		`INFO grouped mode=step tree.root=4`,
		`INFO nested stats.bits=15`,
	), buff.String())
}

func TestColor(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff).WithColor(true)
	log.Error("oops", "n", 1)

	assert.Equal(t,
		"\x1b[91;1mERROR\x1b[0m \x1b[1moops\x1b[0m \x1b[2mn=\x1b[0m1\n",
		buff.String())
}

func TestTrailingNewline(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff)

	log.Info("foo\n\n")

	assert.Equal(t, unlines("INFO foo"), buff.String())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.Same(t, Discard, Discard.WithName("x").WithLevel(Debug))
	assert.Greater(t, Discard.Level(), Error)
	Discard.Error("nothing happens")
}

func unlines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

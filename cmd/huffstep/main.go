package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/abhinav/huffstep/internal/envopt"
	"github.com/abhinav/huffstep/internal/log"
	"github.com/abhinav/huffstep/internal/paniclog"
	"github.com/mattn/go-shellwords"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
}

func main() {
	if err := _main.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv

	runTarget runTargetFunc
}

const _name = "huffstep"

const _usage = `usage: %v [options] [TEXT]

Builds a Huffman code for TEXT and prints the frequency table,
the code tree, the code for each symbol, the encoded bits,
and how much smaller the encoded text is than 8 bits per symbol.

TEXT is read from standard input if it is not given and -input is not set.

The following flags are available:

	-mode MODE
		how to build the tree.
			-mode eager  # all at once (default)
			-mode step   # one merge at a time
		In step mode, the candidate list is printed after every merge.
	-delay DURATION
		time between merges in step mode.
			-delay 100ms
		Defaults to 500ms.
	-split SPLIT
		what counts as one symbol.
			-split rune      # one Unicode code point (default)
			-split byte      # one byte
			-split grapheme  # one user-perceived character
	-bits N
		print at most N bits of the encoded text.
		Prints all of them by default.
	-input FILE
		file to read text from. Use '-' for standard input.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-color
		highlight log output.
	-version
		display version information.

The following environment variables are also read:

	HUFFSTEP_OPTS
		extra flags, placed before those on the command line.
			HUFFSTEP_OPTS='-mode step -delay 1s'
	HUFFSTEP_LOG
		default for -log.
	HUFFSTEP_MODE
		default for -mode.
	HUFFSTEP_SPLIT
		default for -split.
`

// Run parses arguments and the environment and runs the command.
func (cmd *mainCmd) Run(args []string) (err error) {
	if cmd.Getenv == nil {
		cmd.Getenv = os.Getenv
	}

	if opts := cmd.Getenv(_optsEnv); len(opts) > 0 {
		extra, err := shellwords.Parse(opts)
		if err != nil {
			return fmt.Errorf("parse $%v: %w", _optsEnv, err)
		}
		args = append(extra, args...)
	}

	var cfg config
	if err := cmd.loadEnv(&cfg); err != nil {
		return err
	}

	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "%v version %v\n", _name, _version)
		return nil
	}

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cfg.Text = args[0]
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}

	return cmd.run(&cfg)
}

func (cmd *mainCmd) loadEnv(cfg *config) error {
	loader := envopt.Loader{Getenv: cmd.Getenv}
	cfg.RegisterEnv(&loader)
	return loader.Load()
}

func (cmd *mainCmd) init() {
	if cmd.runTarget == nil {
		cmd.runTarget = runTarget
	}
}

func (cmd *mainCmd) run(cfg *config) (err error) {
	cmd.init()

	cfg.FillFrom(&_defaultConfig)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logw := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %q: %v", file, err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logw = f
	}

	defer paniclog.Recover(&err, logw)

	logger := log.New(logw).WithColor(cfg.Color)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	target := &app{
		Log:     logger,
		Stdin:   cmd.Stdin,
		Stdout:  cmd.Stdout,
		Context: ctx,
	}

	return cmd.runTarget(target, cfg)
}

// runTargetFunc runs objects that conform to the app signature.
// Tests use it to intercept the app.
type runTargetFunc func(interface {
	Run(*config) error
}, *config) error

func runTarget(target interface{ Run(*config) error }, cfg *config) error {
	return target.Run(cfg)
}

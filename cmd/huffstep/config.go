package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/abhinav/huffstep/internal/envopt"
	"github.com/abhinav/huffstep/internal/symbols"
)

// Environment variables read by huffstep.
const (
	_optsEnv    = "HUFFSTEP_OPTS"
	_logfileEnv = "HUFFSTEP_LOG"
	_modeEnv    = "HUFFSTEP_MODE"
	_splitEnv   = "HUFFSTEP_SPLIT"
)

const _defaultDelay = 500 * time.Millisecond

var _defaultConfig = config{
	Mode:  _defaultMode,
	Delay: _defaultDelay,
}

type config struct {
	Mode  buildMode
	Split symbols.Mode
	Delay time.Duration

	// Maximum number of encoded bits to print. 0 prints all of them.
	Bits int

	// File to read text from. "-" is stdin.
	Input string

	// Text to encode, from the command line.
	Text string

	LogFile string
	Verbose bool
	Color   bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(&c.Mode, "mode", "")
	flag.Var(&c.Split, "split", "")
	flag.DurationVar(&c.Delay, "delay", c.Delay, "")
	flag.IntVar(&c.Bits, "bits", c.Bits, "")
	flag.StringVar(&c.Input, "input", c.Input, "")
	flag.StringVar(&c.LogFile, "log", c.LogFile, "")
	flag.BoolVar(&c.Verbose, "verbose", c.Verbose, "")
	flag.BoolVar(&c.Color, "color", c.Color, "")
}

func (c *config) RegisterEnv(load *envopt.Loader) {
	load.StringVar(&c.LogFile, _logfileEnv)
	load.Var(&c.Mode, _modeEnv)
	load.Var(&c.Split, _splitEnv)
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Mode) == 0 {
		c.Mode = o.Mode
	}
	if c.Delay == 0 {
		c.Delay = o.Delay
	}
	if c.Bits == 0 {
		c.Bits = o.Bits
	}
	if len(c.Input) == 0 {
		c.Input = o.Input
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Verbose = c.Verbose || o.Verbose
	c.Color = c.Color || o.Color
}

// Validate reports problems with the configuration
// that flag parsing alone doesn't catch.
func (c *config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative: %v", c.Delay)
	}
	if c.Bits < 0 {
		return fmt.Errorf("bits must not be negative: %v", c.Bits)
	}
	if len(c.Input) > 0 && len(c.Text) > 0 {
		return fmt.Errorf("cannot use both -input and a text argument")
	}
	return nil
}

// Args rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Args() []string {
	var args []string
	if len(c.Mode) > 0 {
		args = append(args, "-mode", c.Mode.String())
	}
	if c.Split != symbols.Rune {
		args = append(args, "-split", c.Split.String())
	}
	if c.Delay != 0 {
		args = append(args, "-delay", c.Delay.String())
	}
	if c.Bits != 0 {
		args = append(args, "-bits", strconv.Itoa(c.Bits))
	}
	if len(c.Input) > 0 {
		args = append(args, "-input", c.Input)
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	if c.Color {
		args = append(args, "-color")
	}
	if len(c.Text) > 0 {
		args = append(args, "--", c.Text)
	}
	return args
}

// Command direntdiff compares directory-entry dumps captured on the
// reference system (LEFT) with the ones a reimplementation produced
// (RIGHT), pairing files by name.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/itchio/headway/state"
	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/shadtest/direntdiff/dumps"
)

type options struct {
	Include    string `long:"include" description:"Only compare dumps whose name matches this pattern" value-name:"GLOB"`
	SkipPacked bool   `long:"skip-packed" description:"Leave out dumps of the packed subsystem"`
	FailFast   bool   `long:"fail-fast" description:"Stop at the first pair with findings"`
	Verbose    bool   `short:"v" long:"verbose" description:"Show debug output"`
	NoColor    bool   `long:"no-color" description:"Disable colored output"`

	Args struct {
		Left  string `positional-arg-name:"LEFT" description:"Directory of reference dumps"`
		Right string `positional-arg-name:"RIGHT" description:"Directory of dumps to check"`
	} `positional-args:"yes" required:"yes"`
}

const (
	exitOK       = 0
	exitFindings = 1
	exitFatal    = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] LEFT RIGHT"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitFatal
	}

	logger := newLogger(opts)
	consumer := newConsumer(logger)

	cc := &dumps.CompareContext{
		LeftDir:    opts.Args.Left,
		RightDir:   opts.Args.Right,
		Include:    opts.Include,
		SkipPacked: opts.SkipPacked,
		FailFast:   opts.FailFast,
		Consumer:   consumer,
	}

	summary, err := cc.Run()
	if err != nil {
		logger.Error(fmt.Sprintf("%+v", err))
		return exitFatal
	}

	dumps.Print(consumer, summary)

	if summary.Failed() > 0 {
		return exitFindings
	}
	return exitOK
}

func newLogger(opts options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	noColor := opts.NoColor || !isatty.IsTerminal(os.Stderr.Fd())
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// newConsumer routes consumer messages to the logger. Progress is dropped.
func newConsumer(logger *slog.Logger) *state.Consumer {
	return &state.Consumer{
		OnMessage: func(level string, message string) {
			switch level {
			case "debug":
				logger.Debug(message)
			case "warning", "warn":
				logger.Warn(message)
			case "error":
				logger.Error(message)
			default:
				logger.Info(message)
			}
		},
	}
}

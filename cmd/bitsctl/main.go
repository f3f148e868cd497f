// bitsctl decodes BITS transmissions from a file or the command line and
// prints the version sum or the evaluated expression value.
//
//	bitsctl --input input/day16.in
//	bitsctl --extra D2FE28 9C0141080250320F1802104A08
//	bitsctl --all --format json --tree --input samples.in
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/bitsctl/internal/batch"
	"github.com/danmuck/bitsctl/internal/input"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bitsctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("bitsctl", pflag.ContinueOnError)
	opts := bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := resolveConfig(fs, opts)
	if err != nil {
		return err
	}

	logging.ConfigureRuntime()
	if cfg.LogLevel != "" {
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	var lines []input.Line
	if fs.NArg() > 0 {
		lines = input.FromArgs(fs.Args())
	} else {
		lines, err = input.ReadFile(cfg.Input, input.Options{CommentPrefix: cfg.CommentPrefix})
		if err != nil {
			return err
		}
	}
	if !cfg.All {
		first, err := input.First(lines)
		if err != nil {
			return err
		}
		lines = []input.Line{first}
	}

	report, runErr := batch.Run(lines, cfg.Metric, cfg.Limits)
	if err := writeReport(stdout, report, cfg); err != nil {
		return err
	}
	return runErr
}

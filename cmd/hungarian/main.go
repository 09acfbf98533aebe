// Command hungarian reads a square cost matrix and prints the minimum-cost
// assignment of rows to columns.
//
// Usage:
//
//	hungarian [-config file.yaml] [-in path|-] [-format text|yaml|json] [-out text|yaml|json] [-v] [-verify]
//
// With the default text format the input is one row per line:
//
//	$ printf '1 2 3\n2 4 6\n3 6 9\n' | hungarian
//	0 0 1
//	0 1 0
//	1 0 0
//	cost: 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/internal/codec"
	"github.com/katalvlaran/assignment/internal/config"
	"github.com/katalvlaran/assignment/internal/logging"
	"github.com/katalvlaran/assignment/matrix"
)

// errVerifyMismatch is returned when -verify finds a cheaper assignment.
var errVerifyMismatch = errors.New("hungarian: result is not optimal")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logging.NewText(os.Stderr, slog.LevelError).Error("hungarian: failed", "error", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it in memory.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hungarian", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file (default: search $"+config.EnvConfigPath+", ./"+config.ConfigFileName+")")
		input      = fs.String("in", "", "input file, or - for stdin")
		inFormat   = fs.String("format", "", "input format: text, yaml or json")
		outFormat  = fs.String("out", "", "output format: text, yaml or json")
		verbose    = fs.Bool("v", false, "debug logging")
		verify     = fs.Bool("verify", false, "cross-check small inputs against brute force")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *input
		case "format":
			cfg.InputFormat = *inFormat
		case "out":
			cfg.OutputFormat = *outFormat
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		case "verify":
			cfg.Verify = *verify
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel) // checked by Validate
	logger := logging.NewText(stderr, level)

	importer, err := codec.ForFormat(cfg.InputFormat)
	if err != nil {
		return err
	}
	exporter, err := codec.ForFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	r, closeInput, err := openInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	cost, err := importer.Parse(r)
	if err != nil {
		return err
	}
	logger.Debug("hungarian: loaded costs", "n", cost.Rows(), "format", importer.Format(), "input", cfg.Input)

	res, err := hungarian.Assign(cost, hungarian.WithLogger(logger))
	if err != nil {
		return err
	}

	if cfg.Verify {
		if err = verifyOptimal(res, cost, logger); err != nil {
			return err
		}
	}

	if err = exporter.Export(codec.NewReport(res), stdout); err != nil {
		return err
	}
	logger.Info("hungarian: done", "n", cost.Rows(), "cost", res.Cost)

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, _, err = config.LoadFromPath(path)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// verifyOptimal compares res against the exhaustive solver when n is small
// enough to enumerate; larger inputs are skipped with a warning.
func verifyOptimal(res hungarian.Result[int64], cost matrix.Matrix[int64], logger hungarian.Logger) error {
	if cost.Rows() > hungarian.MaxBruteForceSize {
		logger.Warn("hungarian: verify skipped", "n", cost.Rows(), "max", hungarian.MaxBruteForceSize)
		return nil
	}
	ref, err := hungarian.BruteForce(cost)
	if err != nil {
		return err
	}
	if ref.Cost != res.Cost {
		return fmt.Errorf("%w: cost %d, brute force %d", errVerifyMismatch, res.Cost, ref.Cost)
	}
	logger.Debug("hungarian: verified", "cost", ref.Cost)

	return nil
}

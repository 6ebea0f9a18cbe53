// Command pietgen synthesizes a Piet program that prints a given message
// and writes it out as a PNG image.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aharris/pietgen/layout"
	"github.com/aharris/pietgen/piet"
	"github.com/aharris/pietgen/pietprogram"
)

// Exit codes, following the BSD sysexits.h convention the original tool
// used.
const (
	ExitUsage    = 64
	ExitSoftware = 70
	ExitOSErr    = 71
)

// CLI is the top-level command structure for pietgen.
type CLI struct {
	Message    string `arg:"" help:"Text the generated program prints to stdout."`
	OutputPath string `arg:"" type:"path" help:"Where to write the generated PNG."`

	StartColor string `help:"Color of the origin codel." enum:"${colorNames}" default:"LIGHT_RED"`
	EndColor   string `name:"end-color" help:"Color the abort program is stamped in." enum:"${colorNames}" default:"LIGHT_GREEN"`
	CodelSize  int    `help:"Pixel width/height of one codel." default:"10"`
	Seed       int64  `help:"Seed the layouter's randomness for reproducible output. 0 means non-deterministic." default:"0"`
	Debug      bool   `help:"Enable debug logging."`
}

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("pietgen"),
		kong.Description("Generate a Piet esoteric-language program that prints a message."),
		kong.UsageOnError(),
		kong.Vars{"colorNames": joinNames(piet.ChromaticColors)},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pietgen: %v\n", err)
		os.Exit(ExitSoftware)
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pietgen: %v\n", err)
		os.Exit(ExitUsage)
	}

	setupLogger(cli.Debug)

	if err := ctx.Run(); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			slog.Error("invalid arguments", "error", err)
		}
		os.Exit(exitCodeFor(err))
	}
}

// Run implements the kong command for CLI.
func (cli *CLI) Run() error {
	startColor, err := piet.ColorByName(cli.StartColor)
	if err != nil {
		return &usageError{cause: fmt.Errorf("start-color: %w", err)}
	}
	endColor, err := piet.ColorByName(cli.EndColor)
	if err != nil {
		return &usageError{cause: fmt.Errorf("end-color: %w", err)}
	}
	if cli.CodelSize <= 0 {
		return &usageError{cause: fmt.Errorf("codel-size must be positive, got %d", cli.CodelSize)}
	}

	rnd := layout.NewRandFromEntropy()
	if cli.Seed != 0 {
		rnd = layout.NewRand(uint64(cli.Seed))
	}

	data, err := pietprogram.Generate(pietprogram.Options{
		Message:    cli.Message,
		StartColor: startColor,
		AbortColor: endColor,
		CodelSize:  cli.CodelSize,
		Rand:       rnd,
	})
	if err != nil {
		slog.Error("failed to generate piet program", "error", err)
		return err
	}

	if err := os.WriteFile(cli.OutputPath, data, 0o644); err != nil {
		slog.Error("failed to write output file", "path", cli.OutputPath, "error", err)
		return &ioError{cause: err}
	}

	slog.Info("piet program written", "path", cli.OutputPath, "bytes", len(data))
	return nil
}

// usageError marks an error that should exit with ExitUsage rather than
// ExitSoftware, for invalid flag combinations caught after kong's own
// parsing (e.g. an out-of-range codel size).
type usageError struct{ cause error }

func (e *usageError) Error() string { return e.cause.Error() }
func (e *usageError) Unwrap() error { return e.cause }

// ioError marks a failure writing the output file, distinct from a
// generation failure.
type ioError struct{ cause error }

func (e *ioError) Error() string { return fmt.Sprintf("write output: %v", e.cause) }
func (e *ioError) Unwrap() error { return e.cause }

func exitCodeFor(err error) int {
	var usage *usageError
	var ioErr *ioError
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &ioErr):
		return ExitOSErr
	default:
		return ExitSoftware
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func joinNames(colors []piet.Color) string {
	var out string
	for i, c := range colors {
		if i > 0 {
			out += ","
		}
		out += c.String()
	}
	return out
}

// Package pietprogram ties the command synthesizer, spiral layouter, and
// PNG renderer together into a single entry point, the way this
// teacher's console.Machine wires its CPU, PPU, and bus behind one Run
// call.
package pietprogram

import (
	"fmt"

	"github.com/aharris/pietgen/command"
	"github.com/aharris/pietgen/layout"
	"github.com/aharris/pietgen/piet"
	"github.com/aharris/pietgen/render"
)

// Options configures a single Generate call. It is the entire
// configuration surface of this tool: there is no persistent config
// file, so Options is built directly from parsed CLI flags.
type Options struct {
	Message          string
	StartColor       piet.Color
	AbortColor       piet.Color
	CodelSize        int
	Rand             *layout.Rand
	CommandGenerator command.Generator
}

// GenerateError wraps any failure from command synthesis, layout, or
// rendering into the one error type callers need to handle.
type GenerateError struct {
	cause error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("pietprogram: generate failed: %v", e.cause)
}

func (e *GenerateError) Unwrap() error { return e.cause }

// Generate synthesizes, lays out, and renders a Piet program that prints
// opts.Message and halts. It returns the program's PNG bytes.
func Generate(opts Options) ([]byte, error) {
	data, err := generateImpl(opts)
	if err != nil {
		return nil, &GenerateError{cause: err}
	}
	return data, nil
}

func generateImpl(opts Options) ([]byte, error) {
	if opts.CodelSize < 1 {
		return nil, fmt.Errorf("codel size %d must be at least 1", opts.CodelSize)
	}
	if !opts.StartColor.IsChromatic() {
		return nil, fmt.Errorf("start color %s must be chromatic", opts.StartColor)
	}
	if !opts.AbortColor.IsChromatic() {
		return nil, fmt.Errorf("abort color %s must be chromatic", opts.AbortColor)
	}

	gen := opts.CommandGenerator
	if gen == nil {
		gen = command.NewFactorizeGenerator()
	}
	commands, err := gen.Generate(opts.Message)
	if err != nil {
		return nil, fmt.Errorf("synthesize commands: %w", err)
	}

	rnd := opts.Rand
	if rnd == nil {
		rnd = layout.NewRandFromEntropy()
	}
	layouter := layout.NewSpiralLayouter(rnd, nil)
	grid, err := layouter.Layout(commands, opts.StartColor, opts.AbortColor)
	if err != nil {
		return nil, fmt.Errorf("lay out grid: %w", err)
	}

	png, err := render.Encode(grid, opts.CodelSize)
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}

	return png, nil
}

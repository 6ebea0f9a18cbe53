// Package command synthesizes the sequence of Piet commands that, when
// executed, print a given message and terminate.
package command

import (
	"fmt"

	"github.com/aharris/pietgen/piet"
)

// GenerateError wraps any failure encountered while synthesizing
// commands for a message. Callers should use errors.Is/errors.As against
// the wrapped cause if they need to distinguish failure modes; the CLI
// only needs to know that generation failed.
type GenerateError struct {
	cause error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("command: generate command failed: %v", e.cause)
}

func (e *GenerateError) Unwrap() error { return e.cause }

// Generator produces the ordered command list for a message. Generate
// must place a single NONE at the head of the list (so the program's
// entry codel may legitimately equal the start color), and one
// consecutive OUT_CHAR command per character (rune) of message at the
// tail.
type Generator interface {
	Generate(message string) ([]piet.Command, error)
}

// FactorizeGenerator is the default Generator: it encodes each
// character's code point as a reverse-Polish expression over a small
// factor base, to keep the program short without computing an optimal
// encoding.
type FactorizeGenerator struct{}

// NewFactorizeGenerator returns a ready-to-use FactorizeGenerator.
func NewFactorizeGenerator() *FactorizeGenerator { return &FactorizeGenerator{} }

// Generate implements Generator.
func (g *FactorizeGenerator) Generate(message string) ([]piet.Command, error) {
	commands, err := g.generateImpl(message)
	if err != nil {
		return nil, &GenerateError{cause: err}
	}
	return commands, nil
}

func (g *FactorizeGenerator) generateImpl(message string) ([]piet.Command, error) {
	commands := []piet.Command{piet.None}

	runes := []rune(message)
	for i := len(runes) - 1; i >= 0; i-- {
		block, err := g.characterToCommands(runes[i])
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", runes[i], err)
		}
		commands = append(commands, block...)
	}

	for range runes {
		commands = append(commands, piet.OutChar)
	}

	return commands, nil
}

func (g *FactorizeGenerator) characterToCommands(ch rune) ([]piet.Command, error) {
	if ch == 0 {
		return nil, fmt.Errorf("code point 0 cannot be represented")
	}

	factor, err := Factorize(int(ch), DefaultFactorBase)
	if err != nil {
		return nil, err
	}

	return ValuesToCommands(factor, 0), nil
}

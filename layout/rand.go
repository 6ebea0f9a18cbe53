// Package layout places a command sequence onto a square Piet grid as a
// clockwise inward spiral, terminating at a fixed abort program that
// halts any conformant interpreter.
package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/aharris/pietgen/piet"
)

// Rand is the single source of randomness the layouter uses to pick
// filler commands and conflict-resolving colors. It is threaded
// explicitly through the layouter rather than drawn from a package
// global, so a layout run can be reproduced from a seed.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded deterministically from seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed))}
}

// NewRandFromEntropy returns a Rand seeded from the runtime's entropy
// source, for callers that don't need reproducible output.
func NewRandFromEntropy() *Rand {
	return &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Color returns a random chromatic color not present in exclude.
func (rd *Rand) Color(exclude []piet.Color) (piet.Color, error) {
	candidates := make([]piet.Color, 0, len(piet.ChromaticColors))
	for _, c := range piet.ChromaticColors {
		if !containsColor(exclude, c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return 0, &colorExhaustedError{exclude: len(exclude)}
	}
	return candidates[rd.r.IntN(len(candidates))], nil
}

// Command returns a random filler command not present in exclude. The
// candidate pool is piet.SafeFillerCommands: commands that never alter
// control flow, perform I/O, or reorder the data stack.
func (rd *Rand) Command(exclude []piet.Command) (piet.Command, error) {
	candidates := make([]piet.Command, 0, len(piet.SafeFillerCommands))
	for _, c := range piet.SafeFillerCommands {
		if !containsCommand(exclude, c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("layout: no filler command left after excluding %v", exclude)
	}
	return candidates[rd.r.IntN(len(candidates))], nil
}

func containsColor(haystack []piet.Color, needle piet.Color) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}
	return false
}

func containsCommand(haystack []piet.Command, needle piet.Command) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}
	return false
}

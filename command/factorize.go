package command

import (
	"fmt"

	"github.com/aharris/pietgen/piet"
)

// DefaultFactorBase is the only factor base this generator supports: 2
// and 3. The "+1, recurse, subtract 1" escape hatch used by Factorize is
// only numerically correct when every entry of the base is prime; since
// nothing here validates primality, widening this base is an open
// redesign question this generator intentionally does not support (see
// DESIGN.md).
var DefaultFactorBase = []int{2, 3}

// Factor is a node in a reverse-Polish factorization of an integer. A
// Factor is either a literal value, or a Group: an ordered list of child
// Factors whose product (optionally minus one, when SubtractOne is set)
// reconstructs the value the Group was built from.
//
// This is a tagged variant in place of the heterogeneous int/list
// representation a naive port would use; SubtractOne replaces a trailing
// sentinel -1 entry.
type Factor struct {
	literal     int
	items       []Factor
	isGroup     bool
	subtractOne bool
}

// NewLiteral returns a leaf Factor holding v.
func NewLiteral(v int) Factor { return Factor{literal: v} }

// NewGroup returns a Factor whose value is the product of items, minus
// one if subtractOne is set.
func NewGroup(items []Factor, subtractOne bool) Factor {
	return Factor{items: items, isGroup: true, subtractOne: subtractOne}
}

// IsGroup reports whether f is a Group (as opposed to a literal).
func (f Factor) IsGroup() bool { return f.isGroup }

// Literal returns f's value. Only meaningful when IsGroup is false.
func (f Factor) Literal() int { return f.literal }

// Items returns f's child factors. Only meaningful when IsGroup is true.
func (f Factor) Items() []Factor { return f.items }

// SubtractOne reports whether f's product should have one subtracted
// after folding. Only meaningful when IsGroup is true.
func (f Factor) SubtractOne() bool { return f.subtractOne }

// Factorize decomposes value into a Factor tree over the given factor
// base devs (devs must be primes; see DefaultFactorBase). It repeatedly
// divides by the first element of devs that evenly divides the running
// value; when none divides, it recurses on value+1 and marks that
// recursion's result to have one subtracted once its own product is
// folded.
//
// Factorize panics on no input other than returning an error: value < 1
// is the only rejected input, surfaced as an error so callers (ultimately
// FactorizeGenerator) can report it as an InputError.
func Factorize(value int, devs []int) (Factor, error) {
	if value < 1 {
		return Factor{}, fmt.Errorf("command: value %d is less than 1", value)
	}
	if value == 1 {
		return NewGroup([]Factor{NewLiteral(1)}, false), nil
	}

	var items []Factor
	v := value
	for v > 1 {
		divided := false
		for _, d := range devs {
			if v%d == 0 {
				items = append(items, NewLiteral(d))
				v /= d
				divided = true
				break
			}
		}
		if divided {
			continue
		}

		sub, err := Factorize(v+1, devs)
		if err != nil {
			return Factor{}, err
		}
		escaped := NewGroup(sub.items, true)

		if len(items) == 0 {
			// Nothing was pushed at this level yet: the recursive
			// result *becomes* this level's group, flattened rather
			// than nested.
			return escaped, nil
		}

		items = append(items, escaped)
		return NewGroup(items, false), nil
	}

	return NewGroup(items, false), nil
}

// ValuesToCommands walks a Factor tree left-to-right and emits the Piet
// stack code that reconstructs its value, in reverse-Polish order.
// prevPushed is the integer currently known to sit on top of the stack
// (0 means "nothing reusable"); it lets adjacent literals share a
// DUPLICATE instead of each pushing from scratch.
func ValuesToCommands(factor Factor, prevPushed int) []piet.Command {
	var commands []piet.Command
	before := prevPushed

	for _, item := range factor.items {
		if item.IsGroup() {
			commands = append(commands, ValuesToCommands(item, before)...)
			before = 0
			continue
		}

		v := item.Literal()
		switch {
		case before == 0:
			commands = append(commands, piet.Push)
			for i := 0; i < v-1; i++ {
				commands = append(commands, piet.Push, piet.Add)
			}
		case before == v:
			commands = append(commands, piet.Duplicate)
		case before < v:
			commands = append(commands, piet.Duplicate)
			for i := 0; i < v-before; i++ {
				commands = append(commands, piet.Push, piet.Add)
			}
		default: // before > v
			commands = append(commands, piet.Duplicate)
			for i := 0; i < before-v; i++ {
				commands = append(commands, piet.Push, piet.Subtract)
			}
		}
		before = v
	}

	for i := 0; i < len(factor.items)-1; i++ {
		commands = append(commands, piet.Multiply)
	}
	if factor.subtractOne {
		commands = append(commands, piet.Push, piet.Subtract)
	}

	return commands
}

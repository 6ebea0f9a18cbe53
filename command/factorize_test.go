package command

import (
	"testing"

	"github.com/aharris/pietgen/piet"
)

// runStack executes commands against an abstract int stack and returns
// the final stack contents. It understands exactly the subset of
// commands FactorizeGenerator ever emits for number-building: PUSH (of
// 1), ADD, SUBTRACT, MULTIPLY, DUPLICATE, plus OUT_CHAR and NONE which
// are no-ops here. Any other command, or an operation starved of
// operands, fails the test immediately via t.Fatalf.
func runStack(t *testing.T, commands []piet.Command) []int {
	t.Helper()

	var stack []int
	pop := func() int {
		if len(stack) == 0 {
			t.Fatalf("stack underflow executing %v", commands)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, c := range commands {
		switch c {
		case piet.None, piet.OutChar:
			// no-op for this simulator
		case piet.Push:
			stack = append(stack, 1)
		case piet.Duplicate:
			if len(stack) == 0 {
				t.Fatalf("DUPLICATE on empty stack executing %v", commands)
			}
			stack = append(stack, stack[len(stack)-1])
		case piet.Add:
			b, a := pop(), pop()
			stack = append(stack, a+b)
		case piet.Subtract:
			b, a := pop(), pop()
			stack = append(stack, a-b)
		case piet.Multiply:
			b, a := pop(), pop()
			stack = append(stack, a*b)
		default:
			t.Fatalf("runStack: unsupported command %s", c)
		}
	}
	return stack
}

func TestFactorizeKnownValues(t *testing.T) {
	f, err := Factorize(1, DefaultFactorBase)
	if err != nil {
		t.Fatalf("Factorize(1): unexpected error: %v", err)
	}
	if got := runStack(t, ValuesToCommands(f, 0)); len(got) != 1 || got[0] != 1 {
		t.Errorf("Factorize(1) stack = %v, want [1]", got)
	}

	f, err = Factorize(5, DefaultFactorBase)
	if err != nil {
		t.Fatalf("Factorize(5): unexpected error: %v", err)
	}
	if got := runStack(t, ValuesToCommands(f, 0)); len(got) != 1 || got[0] != 5 {
		t.Errorf("Factorize(5) stack = %v, want [5]", got)
	}

	f, err = Factorize(10, DefaultFactorBase)
	if err != nil {
		t.Fatalf("Factorize(10): unexpected error: %v", err)
	}
	if got := runStack(t, ValuesToCommands(f, 0)); len(got) != 1 || got[0] != 10 {
		t.Errorf("Factorize(10) stack = %v, want [10]", got)
	}
}

func TestFactorizeRejectsBelowOne(t *testing.T) {
	if _, err := Factorize(0, DefaultFactorBase); err == nil {
		t.Error("Factorize(0): want error, got nil")
	}
	if _, err := Factorize(-3, DefaultFactorBase); err == nil {
		t.Error("Factorize(-3): want error, got nil")
	}
}

// TestFactorizeReconstructsAllCodePoints exercises every code point a
// FactorizeGenerator will ever be asked to encode (the printable range
// plus extended Latin-1, 1..255) and checks that executing the emitted
// commands against an abstract stack leaves exactly that value on top.
func TestFactorizeReconstructsAllCodePoints(t *testing.T) {
	for v := 1; v <= 255; v++ {
		f, err := Factorize(v, DefaultFactorBase)
		if err != nil {
			t.Fatalf("Factorize(%d): unexpected error: %v", v, err)
		}
		commands := ValuesToCommands(f, 0)
		got := runStack(t, commands)
		if len(got) != 1 || got[0] != v {
			t.Errorf("value %d: stack after running emitted commands = %v, want [%d]", v, got, v)
		}
	}
}

func TestFactorizeGeneratorGenerate(t *testing.T) {
	g := NewFactorizeGenerator()

	commands, err := g.Generate("Hi")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if len(commands) == 0 || commands[0] != piet.None {
		t.Fatalf("Generate: commands must start with NONE, got %v", commands)
	}
	tail := commands[len(commands)-2:]
	if tail[0] != piet.OutChar || tail[1] != piet.OutChar {
		t.Errorf("Generate(\"Hi\"): want two trailing OUT_CHAR, got %v", tail)
	}
}

func TestFactorizeGeneratorEmptyMessage(t *testing.T) {
	g := NewFactorizeGenerator()
	commands, err := g.Generate("")
	if err != nil {
		t.Fatalf("Generate(\"\"): unexpected error: %v", err)
	}
	if len(commands) != 1 || commands[0] != piet.None {
		t.Errorf("Generate(\"\") = %v, want [NONE]", commands)
	}
}

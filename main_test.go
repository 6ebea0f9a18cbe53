package main

import (
	"errors"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	if got := exitCodeFor(&usageError{cause: errors.New("bad flag")}); got != ExitUsage {
		t.Errorf("exitCodeFor(usageError) = %d, want %d", got, ExitUsage)
	}
	if got := exitCodeFor(&ioError{cause: errors.New("disk full")}); got != ExitOSErr {
		t.Errorf("exitCodeFor(ioError) = %d, want %d", got, ExitOSErr)
	}
	if got := exitCodeFor(errors.New("generation blew up")); got != ExitSoftware {
		t.Errorf("exitCodeFor(plain error) = %d, want %d", got, ExitSoftware)
	}
}

func TestJoinNames(t *testing.T) {
	got := joinNames(nil)
	if got != "" {
		t.Errorf("joinNames(nil) = %q, want empty", got)
	}
}

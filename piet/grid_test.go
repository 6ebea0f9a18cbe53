package piet

import "testing"

func TestGridSetAndConflict(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, LightRed)

	if g.IsConflict(LightRed, 1, 0) != true {
		t.Error("adjacent same chromatic color should conflict")
	}
	if g.IsConflict(LightYellow, 1, 0) != false {
		t.Error("adjacent different chromatic color should not conflict")
	}
	if g.IsConflict(LightRed, 0, 0) != false {
		t.Error("diagonal neighbor should not conflict")
	}
}

func TestGridBlackWhiteNeverConflict(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Black)

	if g.IsConflict(Black, 1, 0) {
		t.Error("BLACK must never conflict")
	}
	if g.IsConflict(White, 1, 0) {
		t.Error("WHITE must never conflict")
	}
}

func TestGridIsFilled(t *testing.T) {
	g := NewGrid(2, 2)
	if g.IsFilled() {
		t.Error("empty grid reported filled")
	}
	g.Set(0, 0, LightRed)
	g.Set(0, 1, LightRed)
	g.Set(1, 0, LightRed)
	if g.IsFilled() {
		t.Error("partially filled grid reported filled")
	}
	g.Set(1, 1, LightRed)
	if !g.IsFilled() {
		t.Error("fully filled grid reported not filled")
	}
}

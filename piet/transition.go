package piet

import "fmt"

// ColorOf returns the color that must be painted adjacent to prevColor in
// order to execute command. It is the forward half of Piet's color
// arithmetic: hue and lightness each advance by the command's step,
// wrapping modulo their cardinality.
//
// ColorOf is undefined (and returns an error) if prevColor is BLACK or
// WHITE, or if command is one of the pseudo-commands (FreeZone, Edge) —
// callers never ask for the color of a transition that doesn't carry a
// hue/lightness step.
func ColorOf(command Command, prevColor Color) (Color, error) {
	if !prevColor.IsChromatic() {
		return Black, fmt.Errorf("piet: ColorOf: prevColor %s is not chromatic", prevColor)
	}
	if command.IsPseudo() {
		return Black, fmt.Errorf("piet: ColorOf: %s has no color step", command)
	}

	hue := (prevColor.Hue() + command.HueStep()) % HueCount
	lightness := (prevColor.Lightness() + command.LightnessStep()) % LightnessCount

	return ColorByHueLightness(hue, lightness)
}

// CommandOf returns the command executed by moving from a codel of color
// prevColor to an adjacent codel of color nextColor.
//
// Two special cases bypass the hue/lightness arithmetic entirely:
// prevColor == WHITE always yields None (white codels pass the IP
// through without executing anything), and nextColor == WHITE always
// yields FreeZone (entering a white codel is itself not an executable
// transition).
func CommandOf(prevColor, nextColor Color) (Command, error) {
	if prevColor == White {
		return None, nil
	}
	if nextColor == White {
		return FreeZone, nil
	}
	if !prevColor.IsChromatic() || !nextColor.IsChromatic() {
		return None, fmt.Errorf("piet: CommandOf: colors %s -> %s are not both chromatic", prevColor, nextColor)
	}

	hueStep := (HueCount + nextColor.Hue() - prevColor.Hue()) % HueCount
	lightStep := (LightnessCount + nextColor.Lightness() - prevColor.Lightness()) % LightnessCount

	return CommandByStep(hueStep, lightStep)
}

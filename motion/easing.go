// Package motion animates the rotation settle and per-item emphasis between core targets
package motion

import "math"

// Ease maps normalized time in [0,1] to normalized progress
type Ease func(t float64) float64

// Linear is the identity ease
func Linear(t float64) float64 { return clamp01(t) }

// Power2Out decelerates with a cubic curve
func Power2Out(t float64) float64 {
	return 1 - math.Pow(1-clamp01(t), 3)
}

// Power3Out decelerates with a quartic curve
func Power3Out(t float64) float64 {
	return 1 - math.Pow(1-clamp01(t), 4)
}

// EaseByName resolves "linear", "power2.out" and "power3.out"; unknown names get Power3Out
func EaseByName(name string) (Ease, bool) {
	switch name {
	case "linear", "none":
		return Linear, true
	case "power2.out":
		return Power2Out, true
	case "power3.out", "":
		return Power3Out, true
	}
	return Power3Out, false
}

func clamp01(t float64) float64 {
	switch {
	case t < 0 || math.IsNaN(t):
		return 0
	case t > 1:
		return 1
	}
	return t
}

package consts

import "math"

const (
	TwoPi   = 2 * math.Pi
	PiOver2 = math.Pi / 2

	// Tolerances for the reactance consistency cross-check
	RelTol = 1e-6
	AbsTol = 1e-9
)

var Sqrt2 = math.Sqrt(2)

package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatResultValue renders one solver result entry for display.
// Undetermined values print as "None" and IEEE infinities as
// "Infinity", matching the sentinel conventions of the solvers.
func FormatResultValue(value float64, known bool) string {
	switch {
	case !known:
		return "None"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
}

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case math.IsInf(value, 0):
		return fmt.Sprintf("Inf %s", unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}

// FormatQuantity renders a named result entry in engineering notation
// with its unit. Frequencies and phase angles use their own layouts;
// everything else is keyed off the quantity name.
func FormatQuantity(key string, value float64, known bool) string {
	if !known {
		return "None"
	}
	switch key {
	case "f", "_input_f":
		return strings.TrimSpace(FormatFrequency(value))
	case "phi":
		return strings.TrimSpace(FormatPhase(value)) + " deg"
	case "omega":
		return FormatValueFactor(value, "rad/s")
	case "L", "_input_L":
		return FormatValueFactor(value, "H")
	case "C", "_input_C":
		return FormatValueFactor(value, "F")
	}
	switch {
	case strings.HasPrefix(key, "V"):
		return FormatValueFactor(value, "V")
	case strings.HasPrefix(key, "I"):
		return FormatValueFactor(value, "A")
	default:
		// R, X, X_L, X_C, Z and the echoed reactances are all ohms
		return FormatValueFactor(value, "ohm")
	}
}

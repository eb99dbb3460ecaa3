package circuit

import (
	"math"

	"rlcalc/internal/consts"
)

// CircuitKind discriminates the four supported circuit shapes.
type CircuitKind int

const (
	SeriesRL CircuitKind = iota
	SeriesRC
	SeriesRLC
	ParallelRLC
)

func (k CircuitKind) String() string {
	switch k {
	case SeriesRL:
		return "RL"
	case SeriesRC:
		return "RC"
	case SeriesRLC:
		return "RLC_SERIES"
	case ParallelRLC:
		return "RLC_PARALLEL"
	}
	return "unknown"
}

// SolveSeries solves a series resistor plus single reactive element
// circuit (RL or RC). Along with V_rms and R it needs any two of
// component value, reactance magnitude and frequency; the missing one
// is derived via DeriveReactance. The reactance magnitude is kept
// positive for both kinds; the signed reactance used for the phase is
// negative for RC (capacitive reactance lags).
func SolveSeries(vrms, r float64, component, reactance, freq *float64, kind CircuitKind) (*Result, error) {
	var elem ElementKind
	switch kind {
	case SeriesRL:
		elem = Inductor
	case SeriesRC:
		elem = Capacitor
	default:
		return nil, validationf("circuit kind %s is not a series two-element circuit", kind)
	}

	if vrms < 0 {
		return nil, validationf("V RMS must be non-negative")
	}
	if r < 0 {
		return nil, validationf("resistance (R) must be non-negative")
	}
	if freq != nil && *freq < 0 {
		return nil, validationf("frequency (f) must be non-negative")
	}

	var omega *float64
	if freq != nil {
		omega = Float(consts.TwoPi * *freq)
	}

	comp, react, w, err := DeriveReactance(component, reactance, omega, elem)
	if err != nil {
		return nil, wrapf(err, "parameter derivation (%s)", kind)
	}

	// A capacitor open at DC is solvable even when omega stayed
	// indeterminate: the infinite reactance pins f = omega = 0.
	dcOpen := kind == SeriesRC && react != nil && math.IsInf(*react, 1)
	if react == nil || (w == nil && !dcOpen) {
		return nil, insufficientf("insufficient parameters for %s circuit: need V_rms, R, and two of (%s, %s, f)",
			kind, elem, elem.reactanceName())
	}

	var f *float64
	switch {
	case w != nil:
		f = Float(*w / consts.TwoPi)
	case dcOpen:
		f = Float(0)
		w = Float(0)
	}

	mag := *react
	signed := mag
	if kind == SeriesRC {
		signed = -mag
	}

	var z, phi, irms, vR, vX float64
	switch {
	case math.IsInf(mag, 1):
		// Open circuit: no current, full supply across the element
		z = math.Inf(1)
		phi = -90
		irms = 0
		vR = 0
		vX = vrms
	case r == 0 && mag == 0:
		// Dead short
		z = 0
		phi = 0
		if vrms > 0 {
			irms = math.Inf(1)
		}
	default:
		z = math.Hypot(r, mag)
		phi = math.Atan2(signed, r) * 180 / math.Pi
		if z == 0 {
			if vrms > 0 {
				irms = math.Inf(1)
			}
		} else {
			irms = vrms / z
		}
		vR = voltageDrop(irms, r, vrms)
		vX = voltageDrop(irms, mag, vrms)
	}

	vpeak := vrms * consts.Sqrt2
	ipeak := irms * consts.Sqrt2
	if math.IsInf(irms, 1) {
		ipeak = math.Inf(1)
	}

	res := NewResult()
	res.Set("V_rms", vrms)
	res.Set("R", r)
	res.SetOpt("f", f)
	res.SetOpt("omega", w)
	res.SetOpt(elem.String(), comp)
	res.Set(elem.reactanceName(), mag)
	res.Set("X", mag)
	res.Set("Z", z)
	res.Set("phi", phi)
	res.Set("I_rms", irms)
	res.Set("I_peak", ipeak)
	res.Set("V_rms_R", vR)
	res.Set("V_rms_X", vX)
	res.Set("V_peak", vpeak)
	if kind == SeriesRL {
		res.SetOpt("_input_L", component)
		res.SetNull("_input_C")
		res.SetOpt("_input_XL", reactance)
		res.SetNull("_input_XC")
	} else {
		res.SetNull("_input_L")
		res.SetOpt("_input_C", component)
		res.SetNull("_input_XL")
		res.SetOpt("_input_XC", reactance)
	}
	res.SetOpt("_input_f", freq)

	return res, nil
}

// voltageDrop is I*X with the infinity propagation rule: an unbounded
// current develops an unbounded drop only across a non-zero impedance
// driven by a non-zero source.
func voltageDrop(irms, x, vrms float64) float64 {
	if !math.IsInf(irms, 1) {
		return irms * x
	}
	if x > 0 && vrms > 0 {
		return math.Inf(1)
	}
	return 0
}

package circuit

import (
	"math"

	"rlcalc/internal/consts"
)

// SolveSeriesRLC solves a fully specified series RLC circuit. Unlike
// the two-element solver there is no parameter derivation: V_rms and R
// must be non-negative and L, C, f strictly positive.
func SolveSeriesRLC(vrms, r, l, c, f float64) (*Result, error) {
	if err := validateRLC(vrms, r, l, c, f); err != nil {
		return nil, err
	}

	omega := consts.TwoPi * f
	xl := omega * l
	xc := 1.0 / (omega * c)
	x := xl - xc

	z := math.Hypot(r, x)
	phi := math.Atan2(x, r) * 180 / math.Pi

	var irms float64
	if z == 0 {
		if vrms > 0 {
			irms = math.Inf(1)
		}
	} else {
		irms = vrms / z
	}

	vpeak := vrms * consts.Sqrt2
	ipeak := irms * consts.Sqrt2
	vR := irms * r
	vL := irms * xl
	vC := irms * xc
	if math.IsInf(irms, 1) {
		ipeak = math.Inf(1)
		vR = math.Inf(1)
		vL = math.Inf(1)
		vC = math.Inf(1)
	}

	res := NewResult()
	res.Set("V_rms", vrms)
	res.Set("R", r)
	res.Set("L", l)
	res.Set("C", c)
	res.Set("f", f)
	res.Set("omega", omega)
	res.Set("X_L", xl)
	res.Set("X_C", xc)
	res.Set("X", x)
	res.Set("Z", z)
	res.Set("phi", phi)
	res.Set("I_rms", irms)
	res.Set("I_peak", ipeak)
	res.Set("V_rms_R", vR)
	res.Set("V_rms_L", vL)
	res.Set("V_rms_C", vC)
	res.Set("V_peak", vpeak)

	return res, nil
}

func validateRLC(vrms, r, l, c, f float64) error {
	for _, v := range []float64{vrms, r, l, c, f} {
		if v < 0 {
			return validationf("all parameters must be non-negative")
		}
	}
	for _, v := range []float64{l, c, f} {
		if v <= 0 {
			return validationf("inductance, capacitance and frequency must be greater than zero for RLC analysis")
		}
	}
	return nil
}

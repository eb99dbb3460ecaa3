package circuit

import (
	"fmt"
	"math"

	"rlcalc/internal/consts"
)

// ElementKind selects the reactance relationship for a single reactive
// element: X_L = omega*L for an inductor, X_C = 1/(omega*C) for a
// capacitor.
type ElementKind int

const (
	Inductor ElementKind = iota
	Capacitor
)

func (k ElementKind) String() string {
	if k == Capacitor {
		return "C"
	}
	return "L"
}

func (k ElementKind) reactanceName() string {
	if k == Capacitor {
		return "X_C"
	}
	return "X_L"
}

// Float returns a pointer to v, for the optional solver arguments.
func Float(v float64) *float64 {
	return &v
}

// DeriveReactance fills in the missing one of component value,
// reactance magnitude and angular frequency for a single reactive
// element. With fewer than two values supplied the inputs come back
// unchanged. When all three values are available, supplied or derived,
// they are cross-checked against the defining relationship and a
// mismatch fails with an inconsistency error.
func DeriveReactance(component, reactance, omega *float64, kind ElementKind) (*float64, *float64, *float64, error) {
	if component != nil && *component < 0 {
		return nil, nil, nil, validationf("%s cannot be negative", kind)
	}
	if reactance != nil && *reactance < 0 {
		return nil, nil, nil, validationf("reactance magnitude (%s) cannot be negative", kind.reactanceName())
	}
	if omega != nil && *omega < 0 {
		return nil, nil, nil, validationf("angular frequency (omega) cannot be negative")
	}
	if kind == Capacitor && component != nil && *component <= 0 {
		return nil, nil, nil, validationf("capacitance (C) must be positive")
	}

	provided := 0
	for _, p := range []*float64{component, reactance, omega} {
		if p != nil {
			provided++
		}
	}
	if provided < 2 {
		return component, reactance, omega, nil
	}

	comp, react, w := component, reactance, omega

	switch {
	case omega != nil && component != nil && reactance == nil:
		switch {
		case *omega == 0:
			if kind == Inductor {
				react = Float(0)
			} else {
				// Capacitor at DC is an open circuit
				react = Float(math.Inf(1))
			}
		case kind == Inductor:
			react = Float(*omega * *component)
		default:
			if *component == 0 {
				return nil, nil, nil, calculationf("capacitance cannot be zero")
			}
			react = Float(1.0 / (*omega * *component))
		}

	case omega != nil && reactance != nil && component == nil:
		switch {
		case *omega == 0:
			if kind == Inductor {
				if *reactance != 0 {
					return nil, nil, nil, inconsistencyf("X_L must be 0 if frequency is 0 Hz")
				}
				// L is indeterminate at DC
				comp = nil
			} else {
				return nil, nil, nil, calculationf("cannot determine C from X_C (%s ohm) if frequency is 0 Hz", formatOhms(*reactance))
			}
		case kind == Inductor:
			comp = Float(*reactance / *omega)
		default:
			if *reactance == 0 {
				return nil, nil, nil, calculationf("cannot determine C if X_C is 0")
			}
			comp = Float(1.0 / (*omega * *reactance))
		}

	case component != nil && reactance != nil && omega == nil:
		if kind == Inductor {
			if *component == 0 {
				if *reactance != 0 {
					return nil, nil, nil, calculationf("cannot calculate frequency from X_L if L is 0")
				}
				// omega stays indeterminate
				w = nil
			} else {
				w = Float(*reactance / *component)
			}
		} else {
			if *component <= 0 {
				return nil, nil, nil, validationf("capacitance must be positive")
			}
			switch {
			case *reactance == 0:
				return nil, nil, nil, calculationf("cannot calculate frequency if X_C is 0 (implies infinite frequency or C=inf)")
			case math.IsInf(*reactance, 1):
				w = Float(0)
			default:
				w = Float(1.0 / (*component * *reactance))
			}
		}
	}

	if comp != nil && react != nil && w != nil {
		if err := checkConsistency(*comp, *react, *w, kind); err != nil {
			return nil, nil, nil, err
		}
	}

	return comp, react, w, nil
}

// checkConsistency recomputes the reactance from component and omega
// and compares it to the actual value. Two infinities agree; a finite
// value never agrees with an infinite one.
func checkConsistency(comp, react, w float64, kind ElementKind) error {
	var expected float64
	switch {
	case kind == Capacitor && comp <= 0:
		return nil
	case w == 0:
		if kind == Inductor {
			expected = 0
		} else {
			expected = math.Inf(1)
		}
	case kind == Inductor:
		expected = w * comp
	default:
		expected = 1.0 / (w * comp)
	}

	reactFinite := !math.IsInf(react, 0)
	expFinite := !math.IsInf(expected, 0)

	var consistent bool
	switch {
	case reactFinite != expFinite:
		consistent = false
	case !reactFinite:
		consistent = true
	default:
		consistent = withinTolerance(react, expected)
	}

	if !consistent {
		return inconsistencyf("inconsistent input: provided/derived %s (%s ohm) does not match value calculated from %s and frequency (%s ohm)",
			kind.reactanceName(), formatOhms(react), kind, formatOhms(expected))
	}
	return nil
}

func withinTolerance(a, b float64) bool {
	diff := math.Abs(a - b)
	return diff <= math.Max(consts.RelTol*math.Max(math.Abs(a), math.Abs(b)), consts.AbsTol)
}

func formatOhms(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	return fmt.Sprintf("%.4g", v)
}

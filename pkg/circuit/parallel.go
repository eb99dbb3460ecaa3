package circuit

import (
	"math"
	"math/cmplx"

	"rlcalc/internal/consts"
	"rlcalc/pkg/matrix"
)

// SolveParallelRLC solves a fully specified parallel RLC circuit. The
// total impedance comes from a one-node nodal solve: the three branch
// admittances are stamped against ground, a 1 V probe source drives the
// node, and the admittance sum is read back off the probe branch
// current. Per-branch currents are computed independently from
// V_rms / |Z_branch|, so a single shorted branch yields an unbounded
// branch current regardless of the others.
func SolveParallelRLC(vrms, r, l, c, f float64) (*Result, error) {
	if err := validateRLC(vrms, r, l, c, f); err != nil {
		return nil, err
	}

	omega := consts.TwoPi * f
	xl := omega * l
	xc := 1.0 / (omega * c)

	var z, phi float64
	if r == 0 {
		// Shorted resistive branch dominates: zero total impedance
		z = 0
		phi = 0
	} else {
		y, err := totalAdmittance(r, xl, xc)
		if err != nil {
			return nil, calculationf("parallel RLC nodal solve: %v", err)
		}
		if y == 0 {
			// Unreachable while r > 0 keeps the real part of y
			// nonzero; maps a zero admittance sum to the
			// open-circuit sentinel should the preconditions relax.
			z = math.Inf(1)
			phi = 0
		} else {
			zTotal := 1 / y
			z = cmplx.Abs(zTotal)
			phi = cmplx.Phase(zTotal) * 180 / math.Pi
		}
	}

	var irms float64
	if z == 0 {
		if vrms > 0 {
			irms = math.Inf(1)
		}
	} else {
		irms = vrms / z
	}

	iR := branchCurrent(vrms, r)
	iL := branchCurrent(vrms, xl)
	iC := branchCurrent(vrms, xc)

	vpeak := vrms * consts.Sqrt2
	ipeak := irms * consts.Sqrt2
	if math.IsInf(irms, 1) {
		ipeak = math.Inf(1)
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
	res.Set("Z", z)
	res.Set("phi", phi)
	res.Set("I_rms", irms)
	res.Set("I_peak", ipeak)
	res.Set("I_rms_R", iR)
	res.Set("I_rms_L", iL)
	res.Set("I_rms_C", iC)
	res.Set("V_peak", vpeak)

	return res, nil
}

// totalAdmittance stamps Y_R + Y_L + Y_C at node 1 with a unit voltage
// probe on branch 2 and solves. KCL at the node gives
// Y*v1 + i_probe = 0 with v1 = 1, so the summed admittance is the
// negated probe current. Requires r > 0.
func totalAdmittance(r, xl, xc float64) (complex128, error) {
	m, err := matrix.NewComplex(2)
	if err != nil {
		return 0, err
	}
	defer m.Destroy()

	m.AddComplexElement(1, 1, 1.0/r, -1.0/xl+1.0/xc)
	m.AddComplexElement(1, 2, 1, 0)
	m.AddComplexElement(2, 1, 1, 0)
	m.AddComplexRHS(2, 1, 0)

	if err := m.Solve(); err != nil {
		return 0, err
	}
	return -m.ComplexSolution(2), nil
}

// branchCurrent models each branch in isolation; a zero branch
// impedance is an ideal short carrying unbounded current.
func branchCurrent(vrms, zBranch float64) float64 {
	if zBranch == 0 {
		return math.Inf(1)
	}
	return vrms / zBranch
}

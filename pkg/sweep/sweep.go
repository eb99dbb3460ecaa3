package sweep

import (
	"fmt"
	"math"

	"rlcalc/pkg/circuit"
)

// Solver computes a steady-state result for a single frequency.
type Solver func(f float64) (*circuit.Result, error)

// SeriesRLC adapts the series RLC solver for sweeping.
func SeriesRLC(vrms, r, l, c float64) Solver {
	return func(f float64) (*circuit.Result, error) {
		return circuit.SolveSeriesRLC(vrms, r, l, c, f)
	}
}

// ParallelRLC adapts the parallel RLC solver for sweeping.
func ParallelRLC(vrms, r, l, c float64) Solver {
	return func(f float64) (*circuit.Result, error) {
		return circuit.SolveParallelRLC(vrms, r, l, c, f)
	}
}

// Sweep evaluates a solver over a range of frequency points, spaced
// per decade ("DEC"), per octave ("OCT") or linearly ("LIN").
type Sweep struct {
	startFreq   float64
	stopFreq    float64
	numPoints   int
	pointsType  string
	frequencies []float64
}

func New(fStart, fStop float64, nPoints int, pType string) (*Sweep, error) {
	if fStart <= 0 {
		return nil, fmt.Errorf("sweep start frequency must be positive, got %g", fStart)
	}
	if fStop < fStart {
		return nil, fmt.Errorf("sweep stop frequency %g below start frequency %g", fStop, fStart)
	}
	if nPoints < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", nPoints)
	}
	switch pType {
	case "DEC", "OCT", "LIN":
	default:
		return nil, fmt.Errorf("unknown sweep point type %q (want DEC, OCT or LIN)", pType)
	}

	s := &Sweep{
		startFreq:  fStart,
		stopFreq:   fStop,
		numPoints:  nPoints,
		pointsType: pType,
	}
	s.generateFrequencyPoints()

	return s, nil
}

// Frequencies returns the generated sweep points.
func (s *Sweep) Frequencies() []float64 {
	freqs := make([]float64, len(s.frequencies))
	copy(freqs, s.frequencies)
	return freqs
}

// Run solves every sweep point and collects the frequency response:
// "FREQ" plus "Z_MAG", "Z_PHASE" (degrees) and "I_MAG" series.
func (s *Sweep) Run(solve Solver) (map[string][]float64, error) {
	results := make(map[string][]float64)

	for _, freq := range s.frequencies {
		res, err := solve(freq)
		if err != nil {
			return nil, fmt.Errorf("sweep solve at f=%g: %w", freq, err)
		}

		results["FREQ"] = append(results["FREQ"], freq)
		if v, ok := res.Get("Z"); ok {
			results["Z_MAG"] = append(results["Z_MAG"], v)
		}
		if v, ok := res.Get("phi"); ok {
			results["Z_PHASE"] = append(results["Z_PHASE"], v)
		}
		if v, ok := res.Get("I_rms"); ok {
			results["I_MAG"] = append(results["I_MAG"], v)
		}
	}

	return results, nil
}

func (s *Sweep) generateFrequencyPoints() {
	s.frequencies = make([]float64, s.numPoints)

	switch s.pointsType {
	case "DEC": // Decade
		logStart := math.Log10(s.startFreq)
		logStop := math.Log10(s.stopFreq)
		step := (logStop - logStart) / float64(s.numPoints-1)
		for i := range s.numPoints {
			s.frequencies[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case "OCT": // Octave
		logStart := math.Log2(s.startFreq)
		logStop := math.Log2(s.stopFreq)
		step := (logStop - logStart) / float64(s.numPoints-1)
		for i := range s.numPoints {
			s.frequencies[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case "LIN": // Linear
		step := (s.stopFreq - s.startFreq) / float64(s.numPoints-1)
		for i := range s.numPoints {
			s.frequencies[i] = s.startFreq + float64(i)*step
		}
	}
}

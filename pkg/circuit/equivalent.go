package circuit

// Arrangement tags how like components are grouped.
type Arrangement int

const (
	Series Arrangement = iota
	Parallel
)

func (a Arrangement) String() string {
	switch a {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	}
	return "unknown"
}

// EquivalentCapacitance combines capacitances: parallel capacitors sum,
// series capacitors combine as the reciprocal of summed reciprocals.
func EquivalentCapacitance(values []float64, arrangement Arrangement) (float64, error) {
	switch arrangement {
	case Parallel:
		return sumOf(values, "capacitance")
	case Series:
		return reciprocalSum(values, "capacitance")
	}
	return 0, validationf("invalid arrangement for capacitors: %d", arrangement)
}

// EquivalentInductance combines inductances: series inductors sum,
// parallel inductors combine as the reciprocal of summed reciprocals.
func EquivalentInductance(values []float64, arrangement Arrangement) (float64, error) {
	switch arrangement {
	case Series:
		return sumOf(values, "inductance")
	case Parallel:
		return reciprocalSum(values, "inductance")
	}
	return 0, validationf("invalid arrangement for inductors: %d", arrangement)
}

func sumOf(values []float64, name string) (float64, error) {
	if err := validatePositive(values, name); err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total, nil
}

func reciprocalSum(values []float64, name string) (float64, error) {
	if err := validatePositive(values, name); err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range values {
		total += 1.0 / v
	}
	return 1.0 / total, nil
}

func validatePositive(values []float64, name string) error {
	if len(values) == 0 {
		return validationf("at least one %s value is required", name)
	}
	for _, v := range values {
		if v <= 0 {
			return validationf("all %s values must be positive, got %g", name, v)
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"rlcalc/pkg/circuit"
	"rlcalc/pkg/util"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rlcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	voltage := fs.Float64("voltage", 0, "source voltage in volts RMS")
	resistance := fs.Float64("resistance", 0, "resistance in ohms")
	component := fs.Float64("component", 0, "inductance (H) for RL or capacitance (F) for RC")
	reactance := fs.Float64("reactance", 0, "reactance magnitude in ohms")
	inductance := fs.Float64("inductance", 0, "inductance in henries (RLC circuits)")
	capacitance := fs.Float64("capacitance", 0, "capacitance in farads (RLC circuits)")
	frequency := fs.Float64("frequency", 0, "frequency in hertz")
	circuitType := fs.String("circuit", "", "circuit type: RL, RC, RLC_SERIES or RLC_PARALLEL")
	asJSON := fs.Bool("json", false, "print the result as a single JSON object")
	pretty := fs.Bool("pretty", false, "print values in engineering notation with units")

	if err := fs.Parse(argv); err != nil {
		return 2
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, name := range []string{"voltage", "resistance", "circuit"} {
		if !set[name] {
			fmt.Fprintf(stderr, "missing required flag --%s\n", name)
			return 1
		}
	}

	result, err := solve(*circuitType, *voltage, *resistance,
		optionalFlag(set, "component", component),
		optionalFlag(set, "reactance", reactance),
		optionalFlag(set, "frequency", frequency),
		*inductance, *capacitance, *frequency)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(stderr, "encoding result: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	for _, key := range result.Keys() {
		v, ok := result.Get(key)
		if *pretty {
			fmt.Fprintf(stdout, "%s: %s\n", key, util.FormatQuantity(key, v, ok))
		} else {
			fmt.Fprintf(stdout, "%s: %s\n", key, util.FormatResultValue(v, ok))
		}
	}
	return 0
}

// optionalFlag maps an unset flag to "unknown", to be derived by the
// solver; an explicitly supplied zero stays a known zero.
func optionalFlag(set map[string]bool, name string, v *float64) *float64 {
	if set[name] {
		return v
	}
	return nil
}

func solve(circuitType string, vrms, r float64, component, reactance, freq *float64, l, c, f float64) (*circuit.Result, error) {
	switch circuitType {
	case "RL":
		return circuit.SolveSeries(vrms, r, component, reactance, freq, circuit.SeriesRL)
	case "RC":
		return circuit.SolveSeries(vrms, r, component, reactance, freq, circuit.SeriesRC)
	case "RLC_SERIES":
		return circuit.SolveSeriesRLC(vrms, r, l, c, f)
	case "RLC_PARALLEL":
		return circuit.SolveParallelRLC(vrms, r, l, c, f)
	default:
		return nil, fmt.Errorf("unknown circuit type %q (want RL, RC, RLC_SERIES or RLC_PARALLEL)", circuitType)
	}
}

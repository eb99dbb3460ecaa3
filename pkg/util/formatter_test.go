package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResultValue(t *testing.T) {
	assert.Equal(t, "None", FormatResultValue(0, false))
	assert.Equal(t, "Infinity", FormatResultValue(math.Inf(1), true))
	assert.Equal(t, "-Infinity", FormatResultValue(math.Inf(-1), true))
	assert.Equal(t, "10", FormatResultValue(10.0, true))
	assert.Equal(t, "0.5", FormatResultValue(0.5, true))
	assert.Equal(t, "1e-06", FormatResultValue(1e-6, true))
}

func TestFormatValueFactor(t *testing.T) {
	assert.Equal(t, "5.000 V", FormatValueFactor(5.0, "V"))
	assert.Equal(t, "1.000 mV", FormatValueFactor(1e-3, "V"))
	assert.Equal(t, "1.000 uA", FormatValueFactor(1e-6, "A"))
	assert.Equal(t, "1.000 nV", FormatValueFactor(1e-9, "V"))
	assert.Equal(t, "Inf ohm", FormatValueFactor(math.Inf(1), "ohm"))
}

func TestFormatFrequency(t *testing.T) {
	assert.Equal(t, "  1.500 kHz", FormatFrequency(1500))
	assert.Equal(t, "  2.000 MHz", FormatFrequency(2e6))
	assert.Equal(t, " 60.000 Hz ", FormatFrequency(60))
}

func TestFormatPhase(t *testing.T) {
	assert.Equal(t, " -80.7", FormatPhase(-80.7259))
	assert.Equal(t, "  90.0", FormatPhase(90))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "None", FormatQuantity("L", 0, false))
	assert.Equal(t, "60.000 Hz", FormatQuantity("f", 60, true))
	assert.Equal(t, "1.500 kHz", FormatQuantity("_input_f", 1500, true))
	assert.Equal(t, "-80.7 deg", FormatQuantity("phi", -80.7259, true))
	assert.Equal(t, "5.000 V", FormatQuantity("V_rms", 5.0, true))
	assert.Equal(t, "2.000 A", FormatQuantity("I_rms", 2.0, true))
	assert.Equal(t, "10.610 mH", FormatQuantity("L", 0.0106103, true))
	assert.Equal(t, "1.000 uF", FormatQuantity("C", 1e-6, true))
	assert.Equal(t, "5.000 ohm", FormatQuantity("Z", 5.0, true))
	assert.Equal(t, "376.991 rad/s", FormatQuantity("omega", 376.99111843, true))
	assert.Equal(t, "Inf ohm", FormatQuantity("Z", math.Inf(1), true))
}

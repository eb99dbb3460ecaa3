package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveReactance(t *testing.T) {
	t.Run("inductor closed form", func(t *testing.T) {
		comp, react, w, err := DeriveReactance(Float(0.5), nil, Float(1000), Inductor)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, *comp, 1e-12)
		assert.InDelta(t, 500.0, *react, 1e-9)
		assert.InDelta(t, 1000.0, *w, 1e-12)
	})

	t.Run("capacitor closed form", func(t *testing.T) {
		comp, react, w, err := DeriveReactance(Float(1e-6), nil, Float(1000), Capacitor)
		require.NoError(t, err)
		assert.InDelta(t, 1e-6, *comp, 1e-18)
		assert.InDelta(t, 1000.0, *react, 1e-6)
		assert.InDelta(t, 1000.0, *w, 1e-12)
	})

	t.Run("round trip recovers component", func(t *testing.T) {
		for _, tc := range []struct {
			kind  ElementKind
			comp  float64
			omega float64
		}{
			{Inductor, 2.0, 100.0},
			{Inductor, 1e-3, 2.0e5},
			{Capacitor, 1e-6, 5000.0},
			{Capacitor, 47e-9, 1.0e6},
		} {
			_, react, _, err := DeriveReactance(Float(tc.comp), nil, Float(tc.omega), tc.kind)
			require.NoError(t, err)

			comp, _, _, err := DeriveReactance(nil, react, Float(tc.omega), tc.kind)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.comp, *comp, 1e-9)
		}
	})

	t.Run("missing omega", func(t *testing.T) {
		_, _, w, err := DeriveReactance(Float(0.25), Float(50.0), nil, Inductor)
		require.NoError(t, err)
		assert.InDelta(t, 200.0, *w, 1e-9)

		_, _, w, err = DeriveReactance(Float(1e-6), Float(1000.0), nil, Capacitor)
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, *w, 1e-6)
	})

	t.Run("inductor at DC has zero reactance", func(t *testing.T) {
		comp, react, w, err := DeriveReactance(Float(2.0), nil, Float(0), Inductor)
		require.NoError(t, err)
		assert.Equal(t, 2.0, *comp)
		assert.Equal(t, 0.0, *react)
		assert.Equal(t, 0.0, *w)
	})

	t.Run("capacitor at DC is open", func(t *testing.T) {
		_, react, w, err := DeriveReactance(Float(1e-6), nil, Float(0), Capacitor)
		require.NoError(t, err)
		assert.True(t, math.IsInf(*react, 1))
		assert.Equal(t, 0.0, *w)
	})

	t.Run("capacitor with infinite reactance pins omega to zero", func(t *testing.T) {
		_, _, w, err := DeriveReactance(Float(1e-6), Float(math.Inf(1)), nil, Capacitor)
		require.NoError(t, err)
		assert.Equal(t, 0.0, *w)
	})

	t.Run("fewer than two inputs returned unchanged", func(t *testing.T) {
		comp, react, w, err := DeriveReactance(Float(1.0), nil, nil, Inductor)
		require.NoError(t, err)
		assert.Equal(t, 1.0, *comp)
		assert.Nil(t, react)
		assert.Nil(t, w)
	})

	t.Run("zero inductance with zero reactance leaves omega unknown", func(t *testing.T) {
		comp, react, w, err := DeriveReactance(Float(0), Float(0), nil, Inductor)
		require.NoError(t, err)
		assert.Equal(t, 0.0, *comp)
		assert.Equal(t, 0.0, *react)
		assert.Nil(t, w)
	})
}

func TestDeriveReactanceFailures(t *testing.T) {
	t.Run("negative component", func(t *testing.T) {
		_, _, _, err := DeriveReactance(Float(-1.0), nil, Float(1.0), Inductor)
		require.Error(t, err)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, ErrValidation, kind)
	})

	t.Run("negative reactance", func(t *testing.T) {
		_, _, _, err := DeriveReactance(nil, Float(-5.0), Float(1.0), Inductor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrValidation, kind)
	})

	t.Run("negative omega", func(t *testing.T) {
		_, _, _, err := DeriveReactance(Float(1.0), nil, Float(-1.0), Inductor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrValidation, kind)
	})

	t.Run("zero capacitance", func(t *testing.T) {
		_, _, _, err := DeriveReactance(Float(0), nil, Float(1000.0), Capacitor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrValidation, kind)
	})

	t.Run("inconsistent triple", func(t *testing.T) {
		_, _, _, err := DeriveReactance(Float(1.0), Float(10.0), Float(1.0), Inductor)
		require.Error(t, err)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, ErrInconsistency, kind)
		assert.Contains(t, err.Error(), "X_L")
	})

	t.Run("consistent triple passes", func(t *testing.T) {
		_, react, _, err := DeriveReactance(Float(1.0), Float(1.0), Float(1.0), Inductor)
		require.NoError(t, err)
		assert.Equal(t, 1.0, *react)
	})

	t.Run("nonzero X_L at DC is inconsistent", func(t *testing.T) {
		_, _, _, err := DeriveReactance(nil, Float(10.0), Float(0), Inductor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrInconsistency, kind)
	})

	t.Run("capacitance from reactance at DC", func(t *testing.T) {
		_, _, _, err := DeriveReactance(nil, Float(10.0), Float(0), Capacitor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrCalculation, kind)
	})

	t.Run("capacitance from zero reactance", func(t *testing.T) {
		_, _, _, err := DeriveReactance(nil, Float(0), Float(1000.0), Capacitor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrCalculation, kind)
	})

	t.Run("frequency from X_L with zero inductance", func(t *testing.T) {
		_, _, _, err := DeriveReactance(Float(0), Float(10.0), nil, Inductor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrCalculation, kind)
	})

	t.Run("frequency from zero X_C", func(t *testing.T) {
		_, _, _, err := DeriveReactance(Float(1e-6), Float(0), nil, Capacitor)
		require.Error(t, err)
		kind, _ := KindOf(err)
		assert.Equal(t, ErrCalculation, kind)
	})
}

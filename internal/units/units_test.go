package units

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comfortadvisor/internal/types"
)

func TestTemperatureConversionRoundTrip(t *testing.T) {
	for _, c := range []float64{-40, 0, 21.1, 29.4, 37.8} {
		assert.InDelta(t, c, FahrenheitToCelsius(CelsiusToFahrenheit(c)), 1e-9)
	}
	assert.Equal(t, 32.0, CelsiusToFahrenheit(0))
	assert.Equal(t, 212.0, CelsiusToFahrenheit(100))
	assert.Equal(t, -40.0, CelsiusToFahrenheit(-40))
}

func TestNormalizeTemperature(t *testing.T) {
	assert.Equal(t, 20.0, NormalizeTemperature(20, types.UnitMetric))
	assert.InDelta(t, 20.0, NormalizeTemperature(68, types.UnitImperial), 1e-9)
}

func TestDisplayTemperature(t *testing.T) {
	assert.Equal(t, 20.0, DisplayTemperature(20, types.UnitMetric))
	assert.InDelta(t, 68.0, DisplayTemperature(20, types.UnitImperial), 1e-9)
}

func TestTemperatureUnit(t *testing.T) {
	assert.Equal(t, "°C", TemperatureUnit(types.UnitMetric))
	assert.Equal(t, "°F", TemperatureUnit(types.UnitImperial))
}

func TestNormalizeThresholdsMetricPassThrough(t *testing.T) {
	in := types.ComfortThresholds{
		SimmerIndexMin: 21.1,
		SimmerIndexMax: 29.4,
		DewPointMax:    15.6,
		HumidityMax:    95,
	}
	assert.Equal(t, in, NormalizeThresholds(in, types.UnitMetric))
}

func TestNormalizeThresholdsImperial(t *testing.T) {
	pollenMax := 2.0
	in := types.ComfortThresholds{
		SimmerIndexMin: 70,
		SimmerIndexMax: 85,
		DewPointMax:    60,
		HumidityMax:    95,
		PollenMax:      &pollenMax,
	}
	out := NormalizeThresholds(in, types.UnitImperial)

	assert.InDelta(t, 21.11, out.SimmerIndexMin, 0.01)
	assert.InDelta(t, 29.44, out.SimmerIndexMax, 0.01)
	assert.InDelta(t, 15.56, out.DewPointMax, 0.01)
	// Humidity and pollen are unit-free.
	assert.Equal(t, 95.0, out.HumidityMax)
	assert.Same(t, &pollenMax, out.PollenMax)
	// The input set is never mutated.
	assert.Equal(t, 70.0, in.SimmerIndexMin)
}

func TestNormalizeMeasurement(t *testing.T) {
	m := types.Measurement{Temperature: 77, Humidity: 50}
	out := NormalizeMeasurement(m, types.UnitImperial)

	assert.InDelta(t, 25.0, out.Temperature, 1e-9)
	assert.Equal(t, 50.0, out.Humidity)
	assert.Equal(t, 77.0, m.Temperature)
}

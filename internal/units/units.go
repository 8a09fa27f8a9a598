// Package units handles unit-system normalization at the configuration
// boundary. The comfort engine computes exclusively in Celsius and percent;
// imperial readings and thresholds are converted here on the way in, and
// engine outputs are converted back to display units on the way out.
package units

import "comfortadvisor/internal/types"

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 { return c*9.0/5.0 + 32.0 }

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }

// NormalizeTemperature converts a temperature expressed in the configured
// unit system into the engine's internal Celsius representation.
func NormalizeTemperature(v float64, sys types.UnitSystem) float64 {
	if sys == types.UnitImperial {
		return FahrenheitToCelsius(v)
	}
	return v
}

// DisplayTemperature converts an internal Celsius value into the configured
// display unit system.
func DisplayTemperature(c float64, sys types.UnitSystem) float64 {
	if sys == types.UnitImperial {
		return CelsiusToFahrenheit(c)
	}
	return c
}

// TemperatureUnit returns the display unit symbol for the configured system.
func TemperatureUnit(sys types.UnitSystem) string {
	if sys == types.UnitImperial {
		return "°F"
	}
	return "°C"
}

// NormalizeThresholds converts a threshold set expressed in the configured
// unit system into internal Celsius values. Humidity and pollen thresholds
// are unit-free and pass through unchanged.
func NormalizeThresholds(t types.ComfortThresholds, sys types.UnitSystem) types.ComfortThresholds {
	if sys != types.UnitImperial {
		return t
	}
	out := t
	out.SimmerIndexMin = FahrenheitToCelsius(t.SimmerIndexMin)
	out.SimmerIndexMax = FahrenheitToCelsius(t.SimmerIndexMax)
	out.DewPointMax = FahrenheitToCelsius(t.DewPointMax)
	return out
}

// NormalizeMeasurement converts a measurement expressed in the configured
// unit system into internal Celsius values.
func NormalizeMeasurement(m types.Measurement, sys types.UnitSystem) types.Measurement {
	out := m
	out.Temperature = NormalizeTemperature(m.Temperature, sys)
	return out
}

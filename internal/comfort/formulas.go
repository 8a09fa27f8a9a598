// Package comfort implements the comfort-evaluation engine: pure functions
// mapping temperature/humidity measurements to derived comfort metrics and
// an open-windows recommendation. All functions are deterministic and hold
// no state; callers validate inputs via ComputeMetrics, which rejects
// out-of-range measurements instead of producing sentinel values.
package comfort

import (
	"math"

	"comfortadvisor/internal/units"
)

// Magnus approximation coefficients for saturation vapor pressure over
// water (T >= 0°C) and over ice (T < 0°C). The ice coefficients improve
// dew point accuracy below freezing.
const (
	magnusWaterA = 17.62
	magnusWaterB = 243.12

	magnusIceA = 22.46
	magnusIceB = 272.62
)

// Validity floors for the apparent-temperature regressions. Below these the
// regressions are not validated and the index reduces to ambient temperature.
const (
	// HeatIndexFloorC is 80°F, the NOAA regression floor.
	HeatIndexFloorC = 26.7
	// HeatIndexHumidityFloor is the relative humidity floor for the NOAA
	// regression.
	HeatIndexHumidityFloor = 40.0
	// SimmerIndexFloorC is 70°F, the SSI regression floor.
	SimmerIndexFloorC = 21.1
)

// DewPoint returns the dew point in °C for an ambient temperature in °C and
// relative humidity in (0, 100]. The Magnus constant set is selected on the
// sign of the temperature. At 100% humidity the dew point equals the ambient
// temperature exactly; it never exceeds it.
func DewPoint(tempC, humidity float64) float64 {
	a, b := magnusWaterA, magnusWaterB
	if tempC < 0 {
		a, b = magnusIceA, magnusIceB
	}
	gamma := math.Log(humidity/100.0) + a*tempC/(b+tempC)
	return b * gamma / (a - gamma)
}

// FrostPoint returns the frost point in °C given the ambient temperature and
// dew point in °C. The value is only meaningful below 0°C; above freezing it
// still computes formulaically but is not used in recommendations.
func FrostPoint(tempC, dewPointC float64) float64 {
	t := tempC + 273.15
	td := dewPointC + 273.15
	return td + 2671.02/(2954.61/t+2.193665*math.Log(t)-13.3448) - t - 273.15
}

// HeatIndex returns the NOAA heat index in °C. Below the 26.7°C temperature
// floor or the 40% humidity floor the regression is not validated and the
// ambient temperature is returned unchanged.
func HeatIndex(tempC, humidity float64) float64 {
	if tempC < HeatIndexFloorC || humidity < HeatIndexHumidityFloor {
		return tempC
	}
	t := units.CelsiusToFahrenheit(tempC)
	hi := -42.379 +
		2.04901523*t +
		10.14333127*humidity -
		0.22475541*t*humidity -
		0.00683783*t*t -
		0.05481717*humidity*humidity +
		0.00122874*t*t*humidity +
		0.00085282*t*humidity*humidity -
		0.00000199*t*t*humidity*humidity
	if humidity > 85 && t >= 80 && t <= 87 {
		hi += (humidity - 85) * 0.1 * (87 - t) * 0.2
	}
	return units.FahrenheitToCelsius(hi)
}

// SimmerIndex returns the summer simmer index in °C. Below the 21.1°C floor
// the regression is not validated and the ambient temperature is returned
// unchanged.
func SimmerIndex(tempC, humidity float64) float64 {
	if tempC < SimmerIndexFloorC {
		return tempC
	}
	t := units.CelsiusToFahrenheit(tempC)
	ssi := 1.98*(t-(0.55-0.0055*humidity)*(t-58.0)) - 56.83
	return units.FahrenheitToCelsius(ssi)
}

// AbsoluteHumidity returns the mass of water vapor per unit volume of air in
// g/m³, from the saturation vapor pressure at tempC scaled by relative
// humidity.
func AbsoluteHumidity(tempC, humidity float64) float64 {
	return 6.112 * math.Exp(17.67*tempC/(243.5+tempC)) * humidity * 2.1674 / (tempC + 273.15)
}

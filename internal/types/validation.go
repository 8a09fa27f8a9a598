package types

import (
	"fmt"
	"math"
)

// Physical validation constraint constants.
const (
	MinTemperatureC = -60.0
	MaxTemperatureC = 60.0
	MinHumidity     = 0.0
	MaxHumidity     = 100.0
	MinPollen       = 0.0
	MaxPollen       = 5.0
)

// VariableMetadata defines the canonical rules for a measured variable.
type VariableMetadata struct {
	ID          string     `json:"id"`
	Unit        string     `json:"unit"`
	Range       [2]float64 `json:"valid_range"`
	Description string     `json:"description"`
}

// StandardVariables defines the authoritative input constraints.
// All components MUST validate against these ranges.
var StandardVariables = map[string]VariableMetadata{
	"temperature_c":    {ID: "temperature_c", Unit: "celsius", Range: [2]float64{MinTemperatureC, MaxTemperatureC}, Description: "Air temperature"},
	"humidity_percent": {ID: "humidity_percent", Unit: "percent", Range: [2]float64{MinHumidity, MaxHumidity}, Description: "Relative humidity"},
	"pollen":           {ID: "pollen", Unit: "index", Range: [2]float64{MinPollen, MaxPollen}, Description: "Pollen index"},
}

// ValidateMeasurement checks a Measurement against the physical input
// constraints. A violation is an invalid-measurement condition: the caller
// must propagate it so the host marks state unavailable rather than showing
// a misleading value. Saturation formulas are undefined at exactly 0%
// relative humidity, so humidity must be within (0, 100].
func ValidateMeasurement(m Measurement) error {
	if math.IsNaN(m.Temperature) || math.IsInf(m.Temperature, 0) {
		return NewAppError(ErrCodeInvalidTemperature,
			"temperature must be a finite number", nil)
	}
	if m.Temperature < MinTemperatureC || m.Temperature > MaxTemperatureC {
		return NewAppError(ErrCodeInvalidTemperature,
			fmt.Sprintf("temperature %.2f°C outside physical range [%.0f, %.0f]",
				m.Temperature, MinTemperatureC, MaxTemperatureC), nil)
	}
	if math.IsNaN(m.Humidity) || m.Humidity <= MinHumidity || m.Humidity > MaxHumidity {
		return NewAppError(ErrCodeInvalidHumidity,
			fmt.Sprintf("relative humidity %.2f%% outside valid range (0, 100]", m.Humidity), nil)
	}
	if m.Pollen != nil {
		if math.IsNaN(*m.Pollen) || *m.Pollen < MinPollen || *m.Pollen > MaxPollen {
			return NewAppError(ErrCodeInvalidPollen,
				fmt.Sprintf("pollen level %.2f outside valid range [%.0f, %.0f]",
					*m.Pollen, MinPollen, MaxPollen), nil)
		}
	}
	return nil
}

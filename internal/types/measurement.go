package types

import "time"

// Measurement is a single temperature/humidity sample at one location.
// Temperature is always degrees Celsius internally; unit conversion happens
// at the configuration boundary, never inside the engine. A Measurement is
// created fresh for each evaluation and never mutated.
type Measurement struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature_c"`
	Humidity    float64   `json:"humidity_percent"`
	// Pollen is the provider-reported pollen level (0..5 scale). Nil when
	// the provider does not report pollen.
	Pollen *float64 `json:"pollen,omitempty"`
}

// ComfortThresholds holds the user-configured comfort band. Values are
// degrees Celsius internally. Set once at configuration time; a threshold
// change triggers re-evaluation but no stored history.
type ComfortThresholds struct {
	SimmerIndexMin float64 `json:"simmer_index_min"`
	SimmerIndexMax float64 `json:"simmer_index_max"`
	DewPointMax    float64 `json:"dew_point_max"`
	HumidityMax    float64 `json:"humidity_max"`
	// PollenMax is optional; nil disables the pollen check entirely.
	PollenMax *float64 `json:"pollen_max,omitempty"`
}

// Validate enforces the threshold invariants. It must be called at
// configuration time so the engine never receives an invalid threshold set.
func (t ComfortThresholds) Validate() error {
	if t.SimmerIndexMin >= t.SimmerIndexMax {
		return NewAppError(ErrCodeConfigThresholdOrder,
			"simmer_index_min must be less than simmer_index_max", nil).
			WithDetails(map[string]any{
				"simmer_index_min": t.SimmerIndexMin,
				"simmer_index_max": t.SimmerIndexMax,
			})
	}
	if t.HumidityMax < 0 || t.HumidityMax > 100 {
		return NewAppError(ErrCodeConfigInvalidValue,
			"humidity_max must be within [0, 100]", nil)
	}
	if t.PollenMax != nil && *t.PollenMax < 0 {
		return NewAppError(ErrCodeConfigInvalidValue,
			"pollen_max must not be negative", nil)
	}
	return nil
}

// DerivedMetrics is the full set of comfort metrics computed from one
// Measurement. Numeric values are Celsius (temperatures) and g/m³
// (absolute humidity). No cross-measurement state is involved.
type DerivedMetrics struct {
	DewPoint          float64           `json:"dew_point"`
	FrostPoint        float64           `json:"frost_point"`
	HeatIndex         float64           `json:"heat_index"`
	SimmerIndex       float64           `json:"simmer_index"`
	AbsoluteHumidity  float64           `json:"absolute_humidity"`
	ThermalPerception ThermalPerception `json:"thermal_perception"`
	SimmerZone        SimmerZone        `json:"simmer_zone"`
	FrostRisk         FrostRisk         `json:"frost_risk"`
}

// Recommendation is the open-windows advisory produced per evaluation cycle.
type Recommendation struct {
	OpenWindows bool       `json:"open_windows"`
	Reason      ReasonCode `json:"reason"`
}

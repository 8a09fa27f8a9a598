package types

// ReasonCode explains an open-windows recommendation. When OpenWindows is
// false, the reason identifies the first failing check in priority order.
type ReasonCode string

const (
	ReasonOutdoorComfortable    ReasonCode = "outdoor_comfortable"
	ReasonIndoorComfortable     ReasonCode = "indoor_comfortable"
	ReasonOutdoorTemperature    ReasonCode = "outdoor_temperature_uncomfortable"
	ReasonOutdoorDewPoint       ReasonCode = "outdoor_dew_point_high"
	ReasonOutdoorHumidity       ReasonCode = "outdoor_humidity_high"
	ReasonOutdoorPollen         ReasonCode = "outdoor_pollen_high"
	ReasonDeterioratingForecast ReasonCode = "deteriorating_forecast"
)

// ThermalPerception is the ordinal comfort category derived from dew point.
type ThermalPerception string

const (
	PerceptionDry                    ThermalPerception = "dry"
	PerceptionVeryComfortable        ThermalPerception = "very_comfortable"
	PerceptionComfortable            ThermalPerception = "comfortable"
	PerceptionOkButHumid             ThermalPerception = "ok_but_humid"
	PerceptionSomewhatUncomfortable  ThermalPerception = "somewhat_uncomfortable"
	PerceptionQuiteUncomfortable     ThermalPerception = "quite_uncomfortable"
	PerceptionExtremelyUncomfortable ThermalPerception = "extremely_uncomfortable"
	PerceptionSeverelyHigh           ThermalPerception = "severely_high"
)

// SimmerZone is the ordinal comfort category derived from the summer simmer index.
type SimmerZone string

const (
	ZoneCool                        SimmerZone = "cool"
	ZoneSlightlyCool                SimmerZone = "slightly_cool"
	ZoneComfortable                 SimmerZone = "comfortable"
	ZoneSlightlyWarm                SimmerZone = "slightly_warm"
	ZoneIncreasingDiscomfort        SimmerZone = "increasing_discomfort"
	ZoneExtremelyWarm               SimmerZone = "extremely_warm"
	ZoneDangerOfHeatstroke          SimmerZone = "danger_of_heatstroke"
	ZoneExtremeDangerOfHeatstroke   SimmerZone = "extreme_danger_of_heatstroke"
	ZoneCirculatoryCollapseImminent SimmerZone = "circulatory_collapse_imminent"
)

// FrostRisk is the ordinal likelihood of frost formation.
type FrostRisk string

const (
	FrostRiskNone           FrostRisk = "no_risk"
	FrostRiskUnlikely       FrostRisk = "unlikely"
	FrostRiskProbable       FrostRisk = "probable"
	FrostRiskHighlyProbable FrostRisk = "highly_probable"
)

// PollenIndex is the provider-reported pollen scale (0..5).
type PollenIndex int

const (
	PollenNone PollenIndex = iota
	PollenVeryLow
	PollenLow
	PollenMedium
	PollenHigh
	PollenVeryHigh
)

// String returns the display label for a pollen index.
func (p PollenIndex) String() string {
	switch p {
	case PollenNone:
		return "none"
	case PollenVeryLow:
		return "very_low"
	case PollenLow:
		return "low"
	case PollenMedium:
		return "medium"
	case PollenHigh:
		return "high"
	case PollenVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// UnitSystem selects the display unit family at the configuration boundary.
// The engine always computes in Celsius internally.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// ProviderType identifies the forecast sample source.
type ProviderType string

const (
	ProviderFake     ProviderType = "fake"
	ProviderScripted ProviderType = "scripted"
)

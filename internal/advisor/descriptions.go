package advisor

import (
	"strings"

	"comfortadvisor/internal/types"
	"comfortadvisor/internal/units"
)

// SensorKind classifies a host-facing sensor value so the host can pick the
// right display unit and state class.
type SensorKind string

const (
	KindTemperature      SensorKind = "temperature"
	KindPercent          SensorKind = "percent"
	KindAbsoluteHumidity SensorKind = "absolute_humidity"
	KindCategorical      SensorKind = "categorical"
	KindBoolean          SensorKind = "boolean"
	KindTimestamp        SensorKind = "timestamp"
)

// Host-facing sensor keys. The indoor/outdoor metric keys are produced by
// prefixing a metric key with a location.
const (
	SensorOpenWindows       = "open_windows"
	SensorOpenWindowsReason = "open_windows_reason"
	SensorOutdoorPollen     = "outdoor_pollen"
	SensorHighSimmerIndex   = "high_simmer_index"
	SensorLowSimmerIndex    = "low_simmer_index"
	SensorNextChangeTime    = "next_change_time"

	MetricDewPoint          = "dew_point"
	MetricFrostPoint        = "frost_point"
	MetricHeatIndex         = "heat_index"
	MetricSimmerIndex       = "simmer_index"
	MetricAbsoluteHumidity  = "absolute_humidity"
	MetricThermalPerception = "thermal_perception"
	MetricSimmerZone        = "simmer_zone"
	MetricFrostRisk         = "frost_risk"
)

// SensorDescription is the stable mapping from a sensor key to its display
// unit kind, icon, and categorical label set.
type SensorDescription struct {
	Key    string     `json:"key"`
	Kind   SensorKind `json:"kind"`
	Icon   string     `json:"icon,omitempty"`
	Labels []string   `json:"labels,omitempty"`
}

// thermalPerceptionLabels is the ordered label set for the thermal
// perception category.
var thermalPerceptionLabels = []string{
	string(types.PerceptionDry),
	string(types.PerceptionVeryComfortable),
	string(types.PerceptionComfortable),
	string(types.PerceptionOkButHumid),
	string(types.PerceptionSomewhatUncomfortable),
	string(types.PerceptionQuiteUncomfortable),
	string(types.PerceptionExtremelyUncomfortable),
	string(types.PerceptionSeverelyHigh),
}

// simmerZoneLabels is the ordered label set for the simmer zone category.
var simmerZoneLabels = []string{
	string(types.ZoneCool),
	string(types.ZoneSlightlyCool),
	string(types.ZoneComfortable),
	string(types.ZoneSlightlyWarm),
	string(types.ZoneIncreasingDiscomfort),
	string(types.ZoneExtremelyWarm),
	string(types.ZoneDangerOfHeatstroke),
	string(types.ZoneExtremeDangerOfHeatstroke),
	string(types.ZoneCirculatoryCollapseImminent),
}

// frostRiskLabels is the ordered label set for the frost risk category.
var frostRiskLabels = []string{
	string(types.FrostRiskNone),
	string(types.FrostRiskUnlikely),
	string(types.FrostRiskProbable),
	string(types.FrostRiskHighlyProbable),
}

// pollenLabels is the ordered label set for the pollen index scale.
var pollenLabels = []string{
	types.PollenNone.String(),
	types.PollenVeryLow.String(),
	types.PollenLow.String(),
	types.PollenMedium.String(),
	types.PollenHigh.String(),
	types.PollenVeryHigh.String(),
}

// reasonLabels is the label set for the recommendation reason sensor.
var reasonLabels = []string{
	string(types.ReasonOutdoorComfortable),
	string(types.ReasonIndoorComfortable),
	string(types.ReasonOutdoorTemperature),
	string(types.ReasonOutdoorDewPoint),
	string(types.ReasonOutdoorHumidity),
	string(types.ReasonOutdoorPollen),
	string(types.ReasonDeterioratingForecast),
}

// metricDescriptions describes the per-location derived metric sensors.
var metricDescriptions = []SensorDescription{
	{Key: MetricDewPoint, Kind: KindTemperature, Icon: "mdi:thermometer-water"},
	{Key: MetricFrostPoint, Kind: KindTemperature, Icon: "mdi:snowflake-thermometer"},
	{Key: MetricHeatIndex, Kind: KindTemperature, Icon: "mdi:sun-thermometer"},
	{Key: MetricSimmerIndex, Kind: KindTemperature, Icon: "mdi:sun-thermometer-outline"},
	{Key: MetricAbsoluteHumidity, Kind: KindAbsoluteHumidity, Icon: "mdi:water"},
	{Key: MetricThermalPerception, Kind: KindCategorical, Labels: thermalPerceptionLabels},
	{Key: MetricSimmerZone, Kind: KindCategorical, Labels: simmerZoneLabels},
	{Key: MetricFrostRisk, Kind: KindCategorical, Icon: "mdi:snowflake-alert", Labels: frostRiskLabels},
}

// adviceDescriptions describes the per-evaluation recommendation sensors.
var adviceDescriptions = []SensorDescription{
	{Key: SensorOpenWindows, Kind: KindBoolean, Icon: "mdi:window-open-variant"},
	{Key: SensorOpenWindowsReason, Kind: KindCategorical, Labels: reasonLabels},
	{Key: SensorOutdoorPollen, Kind: KindCategorical, Icon: "mdi:flower-pollen", Labels: pollenLabels},
	{Key: SensorHighSimmerIndex, Kind: KindTemperature, Icon: "mdi:thermometer-chevron-up"},
	{Key: SensorLowSimmerIndex, Kind: KindTemperature, Icon: "mdi:thermometer-chevron-down"},
	{Key: SensorNextChangeTime, Kind: KindTimestamp, Icon: "mdi:clock-outline"},
}

// Descriptions returns the full host-facing sensor catalog: the advisory
// sensors plus every derived metric prefixed with indoor_/outdoor_.
func Descriptions() []SensorDescription {
	out := make([]SensorDescription, 0, len(adviceDescriptions)+2*len(metricDescriptions))
	out = append(out, adviceDescriptions...)
	for _, loc := range []string{"indoor", "outdoor"} {
		for _, d := range metricDescriptions {
			p := d
			p.Key = loc + "_" + d.Key
			out = append(out, p)
		}
	}
	return out
}

// UnitFor maps a sensor kind to its display unit in the configured unit
// system. Categorical, boolean and timestamp sensors have no unit.
func UnitFor(kind SensorKind, sys types.UnitSystem) string {
	switch kind {
	case KindTemperature:
		return units.TemperatureUnit(sys)
	case KindPercent:
		return "%"
	case KindAbsoluteHumidity:
		return "g/m³"
	default:
		return ""
	}
}

// IconFor returns the icon for a description, swapping in the custom icon
// pack prefix when enabled.
func IconFor(d SensorDescription, customPack bool) string {
	if !customPack || d.Icon == "" {
		return d.Icon
	}
	return strings.Replace(d.Icon, "mdi:", "cai:", 1)
}

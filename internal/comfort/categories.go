package comfort

import "comfortadvisor/internal/types"

// The categorical derivations map a numeric metric onto an ordinal label via
// an ordered, immutable table of (upper bound, label) pairs evaluated with a
// first-match scan. Bounds are half-open: a value belongs to the first entry
// whose upper bound it is strictly below. The final label catches everything
// above the last bound. Breakpoints are fixed constants, not user-configurable.

type perceptionBreakpoint struct {
	upper float64
	label types.ThermalPerception
}

// thermalPerceptionTable maps dew point (°C) to perceived humidity comfort.
var thermalPerceptionTable = []perceptionBreakpoint{
	{10, types.PerceptionDry},
	{13, types.PerceptionVeryComfortable},
	{16, types.PerceptionComfortable},
	{18, types.PerceptionOkButHumid},
	{21, types.PerceptionSomewhatUncomfortable},
	{24, types.PerceptionQuiteUncomfortable},
	{26, types.PerceptionExtremelyUncomfortable},
}

// ThermalPerceptionFor returns the perceived comfort category for a dew
// point in °C.
func ThermalPerceptionFor(dewPointC float64) types.ThermalPerception {
	for _, bp := range thermalPerceptionTable {
		if dewPointC < bp.upper {
			return bp.label
		}
	}
	return types.PerceptionSeverelyHigh
}

type zoneBreakpoint struct {
	upper float64
	label types.SimmerZone
}

// simmerZoneTable maps the summer simmer index (°C) to its published zones.
var simmerZoneTable = []zoneBreakpoint{
	{21.1, types.ZoneCool},
	{25.0, types.ZoneSlightlyCool},
	{28.3, types.ZoneComfortable},
	{32.8, types.ZoneSlightlyWarm},
	{38.8, types.ZoneIncreasingDiscomfort},
	{44.4, types.ZoneExtremelyWarm},
	{51.7, types.ZoneDangerOfHeatstroke},
	{65.6, types.ZoneExtremeDangerOfHeatstroke},
}

// SimmerZoneFor returns the simmer zone for a simmer index in °C.
func SimmerZoneFor(simmerIndexC float64) types.SimmerZone {
	for _, bp := range simmerZoneTable {
		if simmerIndexC < bp.upper {
			return bp.label
		}
	}
	return types.ZoneCirculatoryCollapseImminent
}

// frostAbsHumidityThreshold is the absolute humidity (g/m³) above which
// enough moisture is present for frost to form.
const frostAbsHumidityThreshold = 2.8

// FrostRiskFor returns the frost formation risk given the ambient
// temperature, frost point (both °C) and absolute humidity (g/m³).
func FrostRiskFor(tempC, frostPointC, absHumidity float64) types.FrostRisk {
	if tempC <= 1 && frostPointC <= 0 {
		if absHumidity <= frostAbsHumidityThreshold {
			return types.FrostRiskUnlikely
		}
		return types.FrostRiskHighlyProbable
	}
	if tempC <= 4 && frostPointC <= 0.5 && absHumidity > frostAbsHumidityThreshold {
		return types.FrostRiskProbable
	}
	return types.FrostRiskNone
}

package comfort

import (
	"log/slog"
	"time"

	"comfortadvisor/internal/types"
)

// DefaultForecastHorizon is how far ahead forecast samples are checked before
// recommending that windows be opened.
const DefaultForecastHorizon = 12 * time.Hour

// forecastExtrasWindow is the window over which the forecast high/low simmer
// index extras are aggregated.
const forecastExtrasWindow = 24 * time.Hour

// ComputeMetrics derives the full comfort metric set from one measurement.
// It is a pure function: identical inputs always yield identical outputs.
// Out-of-range inputs return an invalid-measurement error and no metrics.
func ComputeMetrics(m types.Measurement) (types.DerivedMetrics, error) {
	if err := types.ValidateMeasurement(m); err != nil {
		return types.DerivedMetrics{}, err
	}

	dewPoint := DewPoint(m.Temperature, m.Humidity)
	frostPoint := FrostPoint(m.Temperature, dewPoint)
	absHumidity := AbsoluteHumidity(m.Temperature, m.Humidity)
	simmerIndex := SimmerIndex(m.Temperature, m.Humidity)

	return types.DerivedMetrics{
		DewPoint:          dewPoint,
		FrostPoint:        frostPoint,
		HeatIndex:         HeatIndex(m.Temperature, m.Humidity),
		SimmerIndex:       simmerIndex,
		AbsoluteHumidity:  absHumidity,
		ThermalPerception: ThermalPerceptionFor(dewPoint),
		SimmerZone:        SimmerZoneFor(simmerIndex),
		FrostRisk:         FrostRiskFor(m.Temperature, frostPoint, absHumidity),
	}, nil
}

// evalContext carries one location's raw measurement and derived metrics
// through the recommendation rule chain.
type evalContext struct {
	measurement types.Measurement
	metrics     types.DerivedMetrics
	thresholds  types.ComfortThresholds
}

// rule is one (predicate, reason) pair in the fixed-priority decision chain.
// failed returns true when the check rules out opening windows.
type rule struct {
	reason types.ReasonCode
	failed func(c evalContext) bool
}

// outdoorRules is the ordered decision chain applied to outdoor conditions
// (and to each forecast sample). The first failing rule determines the
// reason; order is part of the contract.
var outdoorRules = []rule{
	{
		reason: types.ReasonOutdoorTemperature,
		failed: func(c evalContext) bool {
			return c.metrics.SimmerIndex < c.thresholds.SimmerIndexMin ||
				c.metrics.SimmerIndex > c.thresholds.SimmerIndexMax
		},
	},
	{
		reason: types.ReasonOutdoorDewPoint,
		failed: func(c evalContext) bool {
			return c.metrics.DewPoint > c.thresholds.DewPointMax
		},
	},
	{
		reason: types.ReasonOutdoorHumidity,
		failed: func(c evalContext) bool {
			return c.measurement.Humidity > c.thresholds.HumidityMax
		},
	},
	{
		reason: types.ReasonOutdoorPollen,
		failed: func(c evalContext) bool {
			if c.measurement.Pollen == nil || c.thresholds.PollenMax == nil {
				return false
			}
			return *c.measurement.Pollen > *c.thresholds.PollenMax
		},
	},
}

// firstFailure runs the outdoor rule chain and returns the reason of the
// first failing check, or ok=true when every check passes.
func firstFailure(c evalContext) (types.ReasonCode, bool) {
	for _, r := range outdoorRules {
		if r.failed(c) {
			return r.reason, false
		}
	}
	return "", true
}

// Result is the host-facing outcome of one evaluation cycle: both locations'
// derived metrics, the recommendation, and forecast aggregates when forecast
// samples were supplied.
type Result struct {
	Indoor         types.DerivedMetrics `json:"indoor"`
	Outdoor        types.DerivedMetrics `json:"outdoor"`
	Recommendation types.Recommendation `json:"recommendation"`

	// Forecast aggregates over the next 24 hours. Nil without forecast data.
	HighSimmerIndex *float64   `json:"high_simmer_index,omitempty"`
	LowSimmerIndex  *float64   `json:"low_simmer_index,omitempty"`
	NextChangeTime  *time.Time `json:"next_change_time,omitempty"`
}

// Engine evaluates comfort recommendations. It holds only immutable
// configuration (look-ahead horizon) and injected collaborators (clock,
// logger); every evaluation is an independent pure computation, so a single
// Engine may be shared across goroutines without coordination.
type Engine struct {
	horizon time.Duration
	clock   types.Clock
	logger  *slog.Logger
}

// NewEngine creates an Engine. A non-positive horizon falls back to
// DefaultForecastHorizon; nil clock and logger fall back to the real clock
// and slog.Default.
func NewEngine(horizon time.Duration, clock types.Clock, logger *slog.Logger) *Engine {
	if horizon <= 0 {
		horizon = DefaultForecastHorizon
	}
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{horizon: horizon, clock: clock, logger: logger}
}

// Evaluate computes derived metrics for both locations and the open-windows
// recommendation. The decision policy, in fixed priority order:
//
//  1. Outdoor simmer index outside the configured band.
//  2. Outdoor dew point above dew_point_max.
//  3. Outdoor relative humidity above humidity_max.
//  4. Outdoor pollen above pollen_max (when both are present).
//  5. Indoor simmer index already within the band (no benefit to opening).
//  6. Forecast sample within the look-ahead horizon failing checks 1-4
//     (suppressed to avoid recommending windows that soon need closing).
//  7. Otherwise: open windows.
//
// Any invalid measurement, current or forecast, propagates as an error and
// no verdict is produced.
func (e *Engine) Evaluate(indoor, outdoor types.Measurement, thresholds types.ComfortThresholds, forecast []types.Measurement) (*Result, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	indoorMetrics, err := ComputeMetrics(indoor)
	if err != nil {
		return nil, err
	}
	outdoorMetrics, err := ComputeMetrics(outdoor)
	if err != nil {
		return nil, err
	}

	result := &Result{Indoor: indoorMetrics, Outdoor: outdoorMetrics}

	outdoorCtx := evalContext{measurement: outdoor, metrics: outdoorMetrics, thresholds: thresholds}
	reason, outdoorOK := firstFailure(outdoorCtx)

	forecastOK, err := e.checkForecast(outdoor.Timestamp, outdoorOK, outdoorMetrics.SimmerIndex, thresholds, forecast, result)
	if err != nil {
		return nil, err
	}

	switch {
	case !outdoorOK:
		result.Recommendation = types.Recommendation{OpenWindows: false, Reason: reason}
	case indoorMetrics.SimmerIndex >= thresholds.SimmerIndexMin &&
		indoorMetrics.SimmerIndex <= thresholds.SimmerIndexMax:
		result.Recommendation = types.Recommendation{OpenWindows: false, Reason: types.ReasonIndoorComfortable}
	case !forecastOK:
		result.Recommendation = types.Recommendation{OpenWindows: false, Reason: types.ReasonDeterioratingForecast}
	default:
		result.Recommendation = types.Recommendation{OpenWindows: true, Reason: types.ReasonOutdoorComfortable}
	}

	e.logger.Debug("evaluation complete",
		"open_windows", result.Recommendation.OpenWindows,
		"reason", result.Recommendation.Reason,
		"outdoor_simmer_index", outdoorMetrics.SimmerIndex,
		"indoor_simmer_index", indoorMetrics.SimmerIndex,
	)

	return result, nil
}

// Recommend computes only the recommendation for the given measurements.
// Forecast samples are optional; nil disables forecast suppression.
func (e *Engine) Recommend(indoor, outdoor types.Measurement, thresholds types.ComfortThresholds, forecast []types.Measurement) (types.Recommendation, error) {
	result, err := e.Evaluate(indoor, outdoor, thresholds, forecast)
	if err != nil {
		return types.Recommendation{}, err
	}
	return result.Recommendation, nil
}

// checkForecast walks the forecast samples once, verifying checks 1-4 within
// the look-ahead horizon and collecting the 24h simmer index aggregates and
// the next comfort change time into result. It returns false when any sample
// within the horizon fails the outdoor checks.
func (e *Engine) checkForecast(current time.Time, outdoorOK bool, currentSimmerIndex float64, thresholds types.ComfortThresholds, forecast []types.Measurement, result *Result) (bool, error) {
	if len(forecast) == 0 {
		return true, nil
	}

	now := e.clock.Now()
	if !current.IsZero() && current.After(now) {
		now = current
	}
	horizonEnd := now.Add(e.horizon)
	extrasEnd := now.Add(forecastExtrasWindow)

	ok := true
	high := currentSimmerIndex
	low := currentSimmerIndex

	for _, sample := range forecast {
		if !sample.Timestamp.After(now) {
			continue
		}

		metrics, err := ComputeMetrics(sample)
		if err != nil {
			return false, err
		}
		sampleCtx := evalContext{measurement: sample, metrics: metrics, thresholds: thresholds}
		_, sampleOK := firstFailure(sampleCtx)

		if ok && !sampleOK && !sample.Timestamp.After(horizonEnd) {
			ok = false
		}
		if result.NextChangeTime == nil && sampleOK != outdoorOK {
			t := sample.Timestamp
			result.NextChangeTime = &t
		}
		if !sample.Timestamp.After(extrasEnd) {
			if metrics.SimmerIndex > high {
				high = metrics.SimmerIndex
			}
			if metrics.SimmerIndex < low {
				low = metrics.SimmerIndex
			}
		}
	}

	result.HighSimmerIndex = &high
	result.LowSimmerIndex = &low
	return ok, nil
}

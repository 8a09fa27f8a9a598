// Package advisor implements the sensor host collaborator around the pure
// comfort engine. A Device owns all per-device mutable state: last-known
// sensor readings, the latest provider samples, and the dirty flag that
// gates re-evaluation. The engine itself stays a pure input→output call.
package advisor

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"comfortadvisor/internal/comfort"
	"comfortadvisor/internal/types"
	"comfortadvisor/internal/units"
)

// InputKind names a sensor reading slot on a device.
type InputKind string

const (
	InputIndoorTemperature  InputKind = "indoor_temperature"
	InputIndoorHumidity     InputKind = "indoor_humidity"
	InputOutdoorTemperature InputKind = "outdoor_temperature"
	InputOutdoorHumidity    InputKind = "outdoor_humidity"
	InputOutdoorPollen      InputKind = "outdoor_pollen"
)

// Evaluation is one completed evaluation cycle, ready for host display.
type Evaluation struct {
	ID       string          `json:"id"`
	DeviceID string          `json:"device_id"`
	At       time.Time       `json:"at"`
	Result   *comfort.Result `json:"result"`
	// State maps enabled sensor keys to display-ready values (temperatures
	// converted to the configured unit system, rounded to 2 decimals).
	State map[string]any `json:"state"`
}

// DeviceOptions configures a Device.
type DeviceOptions struct {
	Name           string
	Thresholds     types.ComfortThresholds // internal Celsius values
	UnitSystem     types.UnitSystem
	EnabledSensors []string // empty enables every sensor
	CustomIconPack bool
}

// Device holds the mutable reading state for one advised location pair and
// turns it into evaluations on demand. All methods are safe for concurrent
// use; distinct devices share nothing and may be evaluated in parallel.
type Device struct {
	id     string
	name   string
	engine *comfort.Engine
	opts   DeviceOptions
	clock  types.Clock

	mu       sync.Mutex
	readings map[InputKind]float64
	realtime *types.Measurement
	forecast []types.Measurement
	dirty    bool
	last     *Evaluation
}

// NewDevice creates a Device around the given engine.
func NewDevice(engine *comfort.Engine, opts DeviceOptions, clock types.Clock) *Device {
	if clock == nil {
		clock = types.RealClock{}
	}
	return &Device{
		id:       uuid.NewString(),
		name:     opts.Name,
		engine:   engine,
		opts:     opts,
		clock:    clock,
		readings: make(map[InputKind]float64),
	}
}

// ID returns the device's unique identifier.
func (d *Device) ID() string { return d.id }

// Name returns the configured device name.
func (d *Device) Name() string { return d.name }

// SetReading records a sensor reading, expressed in the configured unit
// system. Temperatures are normalized to Celsius at this boundary. Setting
// an unchanged value does not mark the device dirty.
func (d *Device) SetReading(kind InputKind, value float64) {
	if kind == InputIndoorTemperature || kind == InputOutdoorTemperature {
		value = units.NormalizeTemperature(value, d.opts.UnitSystem)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.readings[kind]; ok && prev == value {
		return
	}
	d.readings[kind] = value
	d.dirty = true
}

// SetWeather records the latest provider samples (already in Celsius).
func (d *Device) SetWeather(realtime *types.Measurement, forecast []types.Measurement) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.realtime = realtime
	d.forecast = forecast
	d.dirty = true
}

// Dirty reports whether any input changed since the last evaluation.
func (d *Device) Dirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

// LastEvaluation returns the most recent evaluation, or nil before the first.
func (d *Device) LastEvaluation() *Evaluation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// requiredInputs maps each mandatory reading slot to the error raised when
// it is absent. Order matters: reports the first missing input.
var requiredInputs = []struct {
	kind InputKind
	code types.ErrorCode
}{
	{InputIndoorTemperature, types.ErrCodeMissingIndoorTemperature},
	{InputIndoorHumidity, types.ErrCodeMissingIndoorHumidity},
	{InputOutdoorTemperature, types.ErrCodeMissingOutdoorTemperature},
	{InputOutdoorHumidity, types.ErrCodeMissingOutdoorHumidity},
}

// Evaluate runs one evaluation cycle from the current readings. A missing
// required reading surfaces as a missing-input error so the host can mark
// the recommendation unavailable, which is distinct from a computed false.
func (d *Device) Evaluate() (*Evaluation, error) {
	d.mu.Lock()
	readings := make(map[InputKind]float64, len(d.readings))
	for k, v := range d.readings {
		readings[k] = v
	}
	realtime := d.realtime
	forecast := d.forecast
	d.mu.Unlock()

	for _, req := range requiredInputs {
		if _, ok := readings[req.kind]; !ok {
			return nil, types.NewAppError(req.code,
				"required sensor reading not yet available", nil).
				WithDetails(map[string]any{"input": string(req.kind), "device": d.name})
		}
	}

	now := d.clock.Now()
	indoor := types.Measurement{
		Timestamp:   now,
		Temperature: readings[InputIndoorTemperature],
		Humidity:    readings[InputIndoorHumidity],
	}
	outdoor := types.Measurement{
		Timestamp:   now,
		Temperature: readings[InputOutdoorTemperature],
		Humidity:    readings[InputOutdoorHumidity],
	}
	if pollen, ok := readings[InputOutdoorPollen]; ok {
		outdoor.Pollen = &pollen
	} else if realtime != nil && realtime.Pollen != nil {
		p := *realtime.Pollen
		outdoor.Pollen = &p
	}

	result, err := d.engine.Evaluate(indoor, outdoor, d.opts.Thresholds, forecast)
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{
		ID:       uuid.NewString(),
		DeviceID: d.id,
		At:       now,
		Result:   result,
		State:    d.stateMap(result, outdoor),
	}

	d.mu.Lock()
	d.dirty = false
	d.last = eval
	d.mu.Unlock()

	return eval, nil
}

// stateMap flattens an evaluation result into display-ready sensor states,
// honoring the enabled-sensor selection and the configured unit system.
func (d *Device) stateMap(result *comfort.Result, outdoor types.Measurement) map[string]any {
	enabled := func(key string) bool {
		if len(d.opts.EnabledSensors) == 0 {
			return true
		}
		for _, s := range d.opts.EnabledSensors {
			if s == key {
				return true
			}
		}
		return false
	}

	state := make(map[string]any)
	put := func(key string, value any) {
		if enabled(key) {
			state[key] = value
		}
	}
	putTemp := func(key string, c float64) {
		put(key, round2(units.DisplayTemperature(c, d.opts.UnitSystem)))
	}

	put(SensorOpenWindows, result.Recommendation.OpenWindows)
	put(SensorOpenWindowsReason, string(result.Recommendation.Reason))
	if outdoor.Pollen != nil {
		put(SensorOutdoorPollen, types.PollenIndex(math.Round(*outdoor.Pollen)).String())
	}

	for loc, metrics := range map[string]types.DerivedMetrics{
		"indoor":  result.Indoor,
		"outdoor": result.Outdoor,
	} {
		putTemp(loc+"_"+MetricDewPoint, metrics.DewPoint)
		putTemp(loc+"_"+MetricFrostPoint, metrics.FrostPoint)
		putTemp(loc+"_"+MetricHeatIndex, metrics.HeatIndex)
		putTemp(loc+"_"+MetricSimmerIndex, metrics.SimmerIndex)
		put(loc+"_"+MetricAbsoluteHumidity, round2(metrics.AbsoluteHumidity))
		put(loc+"_"+MetricThermalPerception, string(metrics.ThermalPerception))
		put(loc+"_"+MetricSimmerZone, string(metrics.SimmerZone))
		put(loc+"_"+MetricFrostRisk, string(metrics.FrostRisk))
	}

	if result.HighSimmerIndex != nil {
		putTemp(SensorHighSimmerIndex, *result.HighSimmerIndex)
	}
	if result.LowSimmerIndex != nil {
		putTemp(SensorLowSimmerIndex, *result.LowSimmerIndex)
	}
	if result.NextChangeTime != nil {
		put(SensorNextChangeTime, result.NextChangeTime.Format(time.RFC3339))
	}

	return state
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

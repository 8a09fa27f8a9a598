package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comfortadvisor/internal/comfort"
	"comfortadvisor/internal/types"
)

type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

func testThresholds() types.ComfortThresholds {
	return types.ComfortThresholds{
		SimmerIndexMin: 21.1,
		SimmerIndexMax: 29.4,
		DewPointMax:    16,
		HumidityMax:    60,
	}
}

func newTestDevice(t *testing.T, opts DeviceOptions) *Device {
	t.Helper()
	clock := &mockClock{now: testNow}
	if opts.Thresholds == (types.ComfortThresholds{}) {
		opts.Thresholds = testThresholds()
	}
	if opts.UnitSystem == "" {
		opts.UnitSystem = types.UnitMetric
	}
	engine := comfort.NewEngine(comfort.DefaultForecastHorizon, clock, nil)
	return NewDevice(engine, opts, clock)
}

// setAllReadings populates the four required sensor slots with conditions
// where indoor is too warm and outdoor passes every comfort check.
func setAllReadings(d *Device) {
	d.SetReading(InputIndoorTemperature, 27)
	d.SetReading(InputIndoorHumidity, 60)
	d.SetReading(InputOutdoorTemperature, 22)
	d.SetReading(InputOutdoorHumidity, 40)
}

func TestEvaluateMissingInputs(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{Name: "Living Room"})

	// No readings at all: the first required slot is reported.
	_, err := d.Evaluate()
	require.Error(t, err)
	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeMissingIndoorTemperature, appErr.Code)
	assert.True(t, appErr.Unavailable())
	assert.Equal(t, "indoor_temperature", appErr.Details["input"])

	d.SetReading(InputIndoorTemperature, 27)
	d.SetReading(InputIndoorHumidity, 60)
	d.SetReading(InputOutdoorTemperature, 22)

	_, err = d.Evaluate()
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeMissingOutdoorHumidity, appErr.Code)
}

func TestEvaluateProducesRecommendation(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{Name: "Living Room"})
	setAllReadings(d)

	eval, err := d.Evaluate()
	require.NoError(t, err)

	assert.NotEmpty(t, eval.ID)
	assert.Equal(t, d.ID(), eval.DeviceID)
	assert.Equal(t, testNow, eval.At)
	assert.True(t, eval.Result.Recommendation.OpenWindows)
	assert.Equal(t, types.ReasonOutdoorComfortable, eval.Result.Recommendation.Reason)

	assert.Equal(t, true, eval.State[SensorOpenWindows])
	assert.Equal(t, string(types.ReasonOutdoorComfortable), eval.State[SensorOpenWindowsReason])
	// Derived metrics appear under location-prefixed keys.
	assert.Contains(t, eval.State, "indoor_"+MetricSimmerIndex)
	assert.Contains(t, eval.State, "outdoor_"+MetricDewPoint)
	assert.Contains(t, eval.State, "outdoor_"+MetricFrostRisk)
	// DewPoint(22, 40) rounded for display.
	assert.InDelta(t, 7.77, eval.State["outdoor_"+MetricDewPoint].(float64), 0.01)
}

func TestEvaluateDirtyLifecycle(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{Name: "Living Room"})
	assert.False(t, d.Dirty())
	assert.Nil(t, d.LastEvaluation())

	setAllReadings(d)
	assert.True(t, d.Dirty())

	eval, err := d.Evaluate()
	require.NoError(t, err)
	assert.False(t, d.Dirty())
	assert.Same(t, eval, d.LastEvaluation())

	// Re-setting an unchanged reading does not dirty the device.
	d.SetReading(InputIndoorTemperature, 27)
	assert.False(t, d.Dirty())

	d.SetReading(InputIndoorTemperature, 26)
	assert.True(t, d.Dirty())
}

func TestEvaluateUsesProviderPollen(t *testing.T) {
	pollenMax := 2.0
	thresholds := testThresholds()
	thresholds.PollenMax = &pollenMax

	d := newTestDevice(t, DeviceOptions{Name: "Living Room", Thresholds: thresholds})
	setAllReadings(d)

	pollen := 4.0
	d.SetWeather(&types.Measurement{
		Timestamp:   testNow,
		Temperature: 22,
		Humidity:    40,
		Pollen:      &pollen,
	}, nil)

	eval, err := d.Evaluate()
	require.NoError(t, err)
	assert.False(t, eval.Result.Recommendation.OpenWindows)
	assert.Equal(t, types.ReasonOutdoorPollen, eval.Result.Recommendation.Reason)
	assert.Equal(t, "high", eval.State[SensorOutdoorPollen])

	// A direct pollen reading takes precedence over the provider sample.
	d.SetReading(InputOutdoorPollen, 1)
	eval, err = d.Evaluate()
	require.NoError(t, err)
	assert.True(t, eval.Result.Recommendation.OpenWindows)
}

func TestEvaluateImperialDevice(t *testing.T) {
	// Thresholds are internal Celsius; readings and display values use the
	// device's imperial unit system.
	d := newTestDevice(t, DeviceOptions{Name: "Living Room", UnitSystem: types.UnitImperial})
	d.SetReading(InputIndoorTemperature, 80.6) // 27°C
	d.SetReading(InputIndoorHumidity, 60)
	d.SetReading(InputOutdoorTemperature, 71.6) // 22°C
	d.SetReading(InputOutdoorHumidity, 40)

	eval, err := d.Evaluate()
	require.NoError(t, err)
	assert.True(t, eval.Result.Recommendation.OpenWindows)

	// DewPoint(22, 40) is ~7.77°C, displayed as Fahrenheit.
	assert.InDelta(t, 45.98, eval.State["outdoor_"+MetricDewPoint].(float64), 0.05)
}

func TestEvaluateEnabledSensorFilter(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{
		Name:           "Living Room",
		EnabledSensors: []string{SensorOpenWindows, "outdoor_" + MetricSimmerIndex},
	})
	setAllReadings(d)

	eval, err := d.Evaluate()
	require.NoError(t, err)

	assert.Len(t, eval.State, 2)
	assert.Contains(t, eval.State, SensorOpenWindows)
	assert.Contains(t, eval.State, "outdoor_"+MetricSimmerIndex)
	assert.NotContains(t, eval.State, SensorOpenWindowsReason)
}

func TestEvaluateForecastSensors(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{Name: "Living Room"})
	setAllReadings(d)
	d.SetWeather(nil, []types.Measurement{
		{Timestamp: testNow.Add(2 * time.Hour), Temperature: 35, Humidity: 60},
	})

	eval, err := d.Evaluate()
	require.NoError(t, err)

	assert.Equal(t, string(types.ReasonDeterioratingForecast), eval.State[SensorOpenWindowsReason])
	assert.Contains(t, eval.State, SensorHighSimmerIndex)
	assert.Contains(t, eval.State, SensorLowSimmerIndex)
	assert.Equal(t, testNow.Add(2*time.Hour).Format(time.RFC3339), eval.State[SensorNextChangeTime])
}

func TestDescriptionsCatalog(t *testing.T) {
	descs := Descriptions()

	keys := make(map[string]SensorDescription, len(descs))
	for _, d := range descs {
		keys[d.Key] = d
	}

	assert.Contains(t, keys, SensorOpenWindows)
	assert.Contains(t, keys, "indoor_"+MetricDewPoint)
	assert.Contains(t, keys, "outdoor_"+MetricSimmerZone)
	assert.Len(t, descs, len(adviceDescriptions)+2*len(metricDescriptions))

	assert.Equal(t, KindBoolean, keys[SensorOpenWindows].Kind)
	assert.ElementsMatch(t, simmerZoneLabels, keys["outdoor_"+MetricSimmerZone].Labels)
}

func TestUnitFor(t *testing.T) {
	assert.Equal(t, "°C", UnitFor(KindTemperature, types.UnitMetric))
	assert.Equal(t, "°F", UnitFor(KindTemperature, types.UnitImperial))
	assert.Equal(t, "g/m³", UnitFor(KindAbsoluteHumidity, types.UnitMetric))
	assert.Equal(t, "", UnitFor(KindCategorical, types.UnitMetric))
}

func TestIconFor(t *testing.T) {
	d := SensorDescription{Icon: "mdi:window-open-variant"}
	assert.Equal(t, "mdi:window-open-variant", IconFor(d, false))
	assert.Equal(t, "cai:window-open-variant", IconFor(d, true))
	assert.Equal(t, "", IconFor(SensorDescription{}, true))
}

package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comfortadvisor/internal/types"
)

// mockProvider is a hand-rolled provider double returning canned samples.
type mockProvider struct {
	realtime    types.Measurement
	forecast    []types.Measurement
	realtimeErr error
	forecastErr error

	realtimeCalls int
	forecastCalls int
}

func (p *mockProvider) Realtime(_ context.Context) (types.Measurement, error) {
	p.realtimeCalls++
	return p.realtime, p.realtimeErr
}

func (p *mockProvider) HourlyForecast(_ context.Context) ([]types.Measurement, error) {
	p.forecastCalls++
	return p.forecast, p.forecastErr
}

func TestRefreshPushesSamplesToDevices(t *testing.T) {
	a := newTestDevice(t, DeviceOptions{Name: "A"})
	b := newTestDevice(t, DeviceOptions{Name: "B"})
	p := &mockProvider{
		realtime: types.Measurement{Timestamp: testNow, Temperature: 22, Humidity: 40},
		forecast: []types.Measurement{
			{Timestamp: testNow.Add(time.Hour), Temperature: 23, Humidity: 40},
		},
	}
	s := NewService(p, []*Device{a, b}, &mockClock{now: testNow}, nil)

	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, 1, p.realtimeCalls)
	assert.Equal(t, 1, p.forecastCalls)
	assert.True(t, a.Dirty())
	assert.True(t, b.Dirty())
}

func TestRefreshProviderFailure(t *testing.T) {
	p := &mockProvider{
		realtimeErr: types.NewAppError(types.ErrCodeProviderUnavailable, "no sample", nil),
	}
	d := newTestDevice(t, DeviceOptions{Name: "A"})
	s := NewService(p, []*Device{d}, &mockClock{now: testNow}, nil)

	err := s.Refresh(context.Background())
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeProviderUnavailable, appErr.Code)
	// Failed refreshes leave device state untouched.
	assert.False(t, d.Dirty())
}

func TestRefreshWithoutProvider(t *testing.T) {
	s := NewService(nil, nil, &mockClock{now: testNow}, nil)
	assert.NoError(t, s.Refresh(context.Background()))
}

func TestEvaluateAllIsolatesFailures(t *testing.T) {
	healthy := newTestDevice(t, DeviceOptions{Name: "Healthy"})
	setAllReadings(healthy)

	// Broken device is dirty but is missing its outdoor readings.
	broken := newTestDevice(t, DeviceOptions{Name: "Broken"})
	broken.SetReading(InputIndoorTemperature, 27)
	broken.SetReading(InputIndoorHumidity, 60)

	s := NewService(nil, []*Device{healthy, broken}, &mockClock{now: testNow}, nil)
	evals, errs := s.EvaluateAll(context.Background())

	require.Len(t, evals, 1)
	require.Len(t, errs, 1)
	assert.Contains(t, evals, healthy.ID())
	require.Contains(t, errs, broken.ID())

	var appErr *types.AppError
	require.ErrorAs(t, errs[broken.ID()], &appErr)
	assert.Equal(t, types.ErrCodeMissingOutdoorTemperature, appErr.Code)
}

func TestEvaluateAllSkipsCleanDevices(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{Name: "A"})
	setAllReadings(d)

	s := NewService(nil, []*Device{d}, &mockClock{now: testNow}, nil)

	evals, errs := s.EvaluateAll(context.Background())
	require.Len(t, evals, 1)
	require.Empty(t, errs)

	// Nothing changed: the second pass evaluates nothing.
	evals, errs = s.EvaluateAll(context.Background())
	assert.Empty(t, evals)
	assert.Empty(t, errs)
}

func TestEvaluateAllManyDevices(t *testing.T) {
	devices := make([]*Device, 0, 3*EvalConcurrencyLimit)
	for i := 0; i < cap(devices); i++ {
		d := newTestDevice(t, DeviceOptions{Name: "Device"})
		setAllReadings(d)
		devices = append(devices, d)
	}

	s := NewService(nil, devices, &mockClock{now: testNow}, nil)
	evals, errs := s.EvaluateAll(context.Background())

	assert.Len(t, evals, len(devices))
	assert.Empty(t, errs)
	for _, d := range devices {
		assert.False(t, d.Dirty())
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	d := newTestDevice(t, DeviceOptions{Name: "A"})
	setAllReadings(d)
	p := &mockProvider{
		realtime: types.Measurement{Timestamp: testNow, Temperature: 22, Humidity: 40},
	}
	s := NewService(p, []*Device{d}, &mockClock{now: testNow}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	// The initial cycle ran before the cancellation was observed.
	assert.Equal(t, 1, p.realtimeCalls)
	require.NotNil(t, d.LastEvaluation())
}

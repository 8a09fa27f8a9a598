package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comfortadvisor/internal/config"
	"comfortadvisor/internal/types"
)

type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 8, 14, 12, 30, 0, 0, time.UTC)

func TestFakeRealtimeDeterministic(t *testing.T) {
	fake := NewFake(&mockClock{now: testNow}, nil)

	first, err := fake.Realtime(context.Background())
	require.NoError(t, err)
	again, err := fake.Realtime(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Equal(t, testNow, first.Timestamp)
	require.NoError(t, types.ValidateMeasurement(first))
	require.NotNil(t, first.Pollen)
}

func TestFakeDailyCycle(t *testing.T) {
	peak := time.Date(2026, 8, 14, 15, 0, 0, 0, time.UTC)
	trough := time.Date(2026, 8, 14, 3, 0, 0, 0, time.UTC)

	warm, err := NewFake(&mockClock{now: peak}, nil).Realtime(context.Background())
	require.NoError(t, err)
	cool, err := NewFake(&mockClock{now: trough}, nil).Realtime(context.Background())
	require.NoError(t, err)

	assert.Greater(t, warm.Temperature, cool.Temperature)
	// Humidity runs inverse to temperature.
	assert.Less(t, warm.Humidity, cool.Humidity)
}

func TestFakeHourlyForecast(t *testing.T) {
	fake := NewFake(&mockClock{now: testNow}, nil)

	forecast, err := fake.HourlyForecast(context.Background())
	require.NoError(t, err)
	require.Len(t, forecast, 24)

	// Samples start at the next full hour and step hourly.
	assert.Equal(t, time.Date(2026, 8, 14, 13, 0, 0, 0, time.UTC), forecast[0].Timestamp)
	for i := 1; i < len(forecast); i++ {
		assert.Equal(t, time.Hour, forecast[i].Timestamp.Sub(forecast[i-1].Timestamp))
		require.NoError(t, types.ValidateMeasurement(forecast[i]))
	}
}

func TestNewSelectsConfiguredProvider(t *testing.T) {
	cfg := &config.Config{Provider: config.ProviderConfig{Type: "fake"}}

	p, err := New(cfg, &mockClock{now: testNow}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Fake{}, p)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	cfg := &config.Config{Provider: config.ProviderConfig{Type: "openweathermap"}}

	_, err := New(cfg, nil, nil)
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeConfigUnknownProvider, appErr.Code)
}

package provider

import (
	"context"
	"log/slog"
	"math"
	"time"

	"comfortadvisor/internal/config"
	"comfortadvisor/internal/types"
)

// Fake is a deterministic synthetic weather source for local development and
// tests. It models a daily cycle: temperature follows a sinusoid peaking
// mid-afternoon, humidity runs inverse to temperature, and pollen steps
// through the index scale by day of year. Identical clock times always
// produce identical samples.
type Fake struct {
	clock  types.Clock
	logger *slog.Logger

	// Cycle parameters, fixed at construction.
	meanTempC  float64
	tempSwingC float64
	meanRH     float64
	rhSwing    float64
}

// NewFake creates a Fake provider with a temperate default climate.
func NewFake(clock types.Clock, logger *slog.Logger) *Fake {
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fake{
		clock:      clock,
		logger:     logger,
		meanTempC:  18.0,
		tempSwingC: 8.0,
		meanRH:     60.0,
		rhSwing:    25.0,
	}
}

func newFakeFromConfig(_ *config.Config, clock types.Clock, logger *slog.Logger) (Provider, error) {
	return NewFake(clock, logger), nil
}

// sampleAt generates the synthetic measurement for an instant.
func (f *Fake) sampleAt(t time.Time) types.Measurement {
	// Fractional hour of day, peaking at 15:00.
	hour := float64(t.Hour()) + float64(t.Minute())/60.0
	phase := (hour - 15.0) / 24.0 * 2 * math.Pi

	temp := f.meanTempC + f.tempSwingC*math.Cos(phase)
	rh := f.meanRH - f.rhSwing*math.Cos(phase)
	if rh < 5 {
		rh = 5
	}
	if rh > 100 {
		rh = 100
	}

	pollen := float64(t.YearDay() % 6)

	return types.Measurement{
		Timestamp:   t,
		Temperature: temp,
		Humidity:    rh,
		Pollen:      &pollen,
	}
}

// Realtime returns the synthetic sample for the current clock time.
func (f *Fake) Realtime(_ context.Context) (types.Measurement, error) {
	return f.sampleAt(f.clock.Now()), nil
}

// HourlyForecast returns 24 synthetic samples at hourly steps starting at
// the next full hour.
func (f *Fake) HourlyForecast(_ context.Context) ([]types.Measurement, error) {
	start := f.clock.Now().Truncate(time.Hour).Add(time.Hour)
	out := make([]types.Measurement, 0, 24)
	for i := 0; i < 24; i++ {
		out = append(out, f.sampleAt(start.Add(time.Duration(i)*time.Hour)))
	}
	return out, nil
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"comfortadvisor/internal/config"
	"comfortadvisor/internal/types"
)

// Scripted replays weather samples from a JSON fixture file. The file holds
// an array of samples with timestamps; Realtime returns the latest sample at
// or before the current clock time and HourlyForecast returns everything
// after it. Useful for demos and reproducing reported conditions.
type Scripted struct {
	clock   types.Clock
	logger  *slog.Logger
	samples []types.Measurement
}

// scriptedSample is the fixture file record shape.
type scriptedSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Pollen      *float64  `json:"pollen,omitempty"`
}

// NewScripted loads a Scripted provider from the fixture at path.
func NewScripted(path string, clock types.Clock, logger *slog.Logger) (*Scripted, error) {
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeProviderUnavailable,
			fmt.Sprintf("failed to read weather script %q", path), err)
	}

	var raw []scriptedSample
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, types.NewAppError(types.ErrCodeProviderBadSample,
			fmt.Sprintf("weather script %q is not valid JSON", path), err)
	}
	if len(raw) == 0 {
		return nil, types.NewAppError(types.ErrCodeProviderBadSample,
			fmt.Sprintf("weather script %q contains no samples", path), nil)
	}

	samples := make([]types.Measurement, 0, len(raw))
	for i, s := range raw {
		m := types.Measurement{
			Timestamp:   s.Timestamp,
			Temperature: s.Temperature,
			Humidity:    s.Humidity,
			Pollen:      s.Pollen,
		}
		if err := types.ValidateMeasurement(m); err != nil {
			return nil, types.NewAppError(types.ErrCodeProviderBadSample,
				fmt.Sprintf("weather script %q sample %d is invalid", path, i), err)
		}
		samples = append(samples, m)
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	logger.Debug("loaded weather script", "path", path, "samples", len(samples))
	return &Scripted{clock: clock, logger: logger, samples: samples}, nil
}

func newScriptedFromConfig(cfg *config.Config, clock types.Clock, logger *slog.Logger) (Provider, error) {
	return NewScripted(cfg.Provider.ScriptPath, clock, logger)
}

// Realtime returns the latest scripted sample at or before the current time.
func (s *Scripted) Realtime(_ context.Context) (types.Measurement, error) {
	now := s.clock.Now()
	var current *types.Measurement
	for i := range s.samples {
		if s.samples[i].Timestamp.After(now) {
			break
		}
		current = &s.samples[i]
	}
	if current == nil {
		return types.Measurement{}, types.NewAppError(types.ErrCodeProviderUnavailable,
			"weather script has no sample at or before the current time", nil)
	}
	return *current, nil
}

// HourlyForecast returns all scripted samples after the current time.
func (s *Scripted) HourlyForecast(_ context.Context) ([]types.Measurement, error) {
	now := s.clock.Now()
	var out []types.Measurement
	for _, m := range s.samples {
		if m.Timestamp.After(now) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Package provider supplies current and forecast weather samples to the
// advisor. Implementations are in-process sample sources: a deterministic
// synthetic generator for local use and a scripted fixture reader. The
// registry is the single point where a configured provider type is turned
// into an implementation.
package provider

import (
	"context"
	"fmt"
	"log/slog"

	"comfortadvisor/internal/config"
	"comfortadvisor/internal/types"
)

// Provider returns weather measurements for the configured location.
// Realtime supplies the current outdoor sample (including pollen when the
// provider reports it); HourlyForecast supplies future samples ordered by
// timestamp.
type Provider interface {
	Realtime(ctx context.Context) (types.Measurement, error)
	HourlyForecast(ctx context.Context) ([]types.Measurement, error)
}

// Factory builds a Provider from configuration.
type Factory func(cfg *config.Config, clock types.Clock, logger *slog.Logger) (Provider, error)

// factories maps provider types to their constructors. Registration happens
// at init time; the set is fixed for the life of the process.
var factories = map[types.ProviderType]Factory{
	types.ProviderFake:     newFakeFromConfig,
	types.ProviderScripted: newScriptedFromConfig,
}

// New builds the Provider selected by cfg.Provider.Type.
func New(cfg *config.Config, clock types.Clock, logger *slog.Logger) (Provider, error) {
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	factory, ok := factories[types.ProviderType(cfg.Provider.Type)]
	if !ok {
		return nil, types.NewAppError(types.ErrCodeConfigUnknownProvider,
			fmt.Sprintf("unknown weather provider %q", cfg.Provider.Type), nil)
	}
	return factory(cfg, clock, logger)
}

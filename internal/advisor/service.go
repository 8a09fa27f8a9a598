package advisor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"comfortadvisor/internal/provider"
	"comfortadvisor/internal/types"
)

// EvalConcurrencyLimit bounds how many devices are evaluated in parallel.
// Evaluations share no mutable state, so the limit exists only to keep the
// goroutine count sane with large device fleets.
const EvalConcurrencyLimit = 8

// Service coordinates provider refreshes and evaluation across a device
// fleet. It owns no comfort logic; each device evaluates independently.
type Service struct {
	provider provider.Provider
	devices  []*Device
	clock    types.Clock
	logger   *slog.Logger
}

// NewService creates a Service over the given devices.
func NewService(p provider.Provider, devices []*Device, clock types.Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: p, devices: devices, clock: clock, logger: logger}
}

// Devices returns the managed devices.
func (s *Service) Devices() []*Device { return s.devices }

// Refresh pulls the latest realtime and forecast samples from the provider
// and pushes them to every device. Provider failures leave the previous
// samples in place on the devices.
func (s *Service) Refresh(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}

	realtime, err := s.provider.Realtime(ctx)
	if err != nil {
		return err
	}
	forecast, err := s.provider.HourlyForecast(ctx)
	if err != nil {
		return err
	}

	for _, d := range s.devices {
		d.SetWeather(&realtime, forecast)
	}
	s.logger.Debug("provider refresh complete", "forecast_samples", len(forecast))
	return nil
}

// EvaluateAll evaluates every dirty device in parallel with bounded
// concurrency. Failures are isolated per device: one device's invalid or
// missing input never blocks the others. The returned maps are keyed by
// device ID.
func (s *Service) EvaluateAll(ctx context.Context) (map[string]*Evaluation, map[string]error) {
	var mu sync.Mutex
	evals := make(map[string]*Evaluation)
	errs := make(map[string]error)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(EvalConcurrencyLimit)

	for _, d := range s.devices {
		if !d.Dirty() {
			continue
		}
		d := d
		g.Go(func() error {
			eval, err := d.Evaluate()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[d.ID()] = err
				s.logger.Warn("device evaluation failed",
					"device", d.Name(),
					"error", err,
				)
				return nil
			}
			evals[d.ID()] = eval
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()
	return evals, errs
}

// Run refreshes and evaluates on a fixed interval until the context is
// cancelled. It performs one cycle immediately on entry.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("provider refresh failed", "error", err)
		}
		evals, errs := s.EvaluateAll(ctx)
		s.logger.Info("evaluation cycle complete",
			"evaluated", len(evals),
			"failed", len(errs),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Package main is the comfort advisor entrypoint.
//
// It loads configuration from the environment (optionally seeded from a
// .env file), wires the configured weather provider and a device, seeds the
// device's sensor readings from the optional readings file, and either runs
// a single evaluation cycle or polls on the configured interval. Evaluation
// state is printed to stdout as JSON for the host to consume.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"comfortadvisor/internal/advisor"
	"comfortadvisor/internal/comfort"
	"comfortadvisor/internal/config"
	"comfortadvisor/internal/provider"
	"comfortadvisor/internal/types"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	clock := types.RealClock{}

	prov, err := provider.New(cfg, clock, logger)
	if err != nil {
		logger.Error("failed to initialize weather provider", "error", err)
		os.Exit(1)
	}

	engine := comfort.NewEngine(cfg.Comfort.ForecastHorizon, clock, logger)
	device := advisor.NewDevice(engine, advisor.DeviceOptions{
		Name:           cfg.Device.Name,
		Thresholds:     cfg.Thresholds(),
		UnitSystem:     cfg.Units(),
		EnabledSensors: cfg.Device.EnabledSensors,
		CustomIconPack: cfg.Device.CustomIconPack,
	}, clock)

	if cfg.Inputs.ReadingsPath != "" {
		if err := seedReadings(cfg, device); err != nil {
			logger.Error("failed to seed sensor readings", "error", err)
			os.Exit(1)
		}
	}

	service := advisor.NewService(prov, []*advisor.Device{device}, clock, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Device.Poll {
		logger.Info("starting poll loop", "interval", cfg.Device.PollInterval.String())
		if err := service.Run(ctx, cfg.Device.PollInterval); err != nil && ctx.Err() == nil {
			logger.Error("poll loop failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := service.Refresh(ctx); err != nil {
		logger.Warn("provider refresh failed, evaluating without forecast", "error", err)
	}
	evals, errs := service.EvaluateAll(ctx)
	for _, evalErr := range errs {
		var appErr *types.AppError
		if errors.As(evalErr, &appErr) && appErr.Unavailable() {
			logger.Warn("state unavailable", "error", evalErr)
			continue
		}
		logger.Error("evaluation failed", "error", evalErr)
		os.Exit(1)
	}
	for _, eval := range evals {
		out, err := json.MarshalIndent(eval.State, "", "  ")
		if err != nil {
			logger.Error("failed to encode evaluation state", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	}
}

// seedReadings loads the readings file and pushes each configured sensor's
// value into the device.
func seedReadings(cfg *config.Config, device *advisor.Device) error {
	data, err := os.ReadFile(cfg.Inputs.ReadingsPath)
	if err != nil {
		return err
	}
	var readings map[string]float64
	if err := json.Unmarshal(data, &readings); err != nil {
		return err
	}

	sensors := map[advisor.InputKind]string{
		advisor.InputIndoorTemperature:  cfg.Inputs.IndoorTemperatureSensor,
		advisor.InputIndoorHumidity:     cfg.Inputs.IndoorHumiditySensor,
		advisor.InputOutdoorTemperature: cfg.Inputs.OutdoorTemperatureSensor,
		advisor.InputOutdoorHumidity:    cfg.Inputs.OutdoorHumiditySensor,
		advisor.InputOutdoorPollen:      cfg.Inputs.OutdoorPollenSensor,
	}
	for kind, sensorID := range sensors {
		if sensorID == "" {
			continue
		}
		if value, ok := readings[sensorID]; ok {
			device.SetReading(kind, value)
		}
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package config defines the configuration surface for the comfort advisor.
// Configuration is loaded once at process initialization and is immutable
// thereafter; the engine treats thresholds as immutable inputs per
// evaluation. It follows 12-Factor principles by strictly separating code
// from configuration: values come from the OS environment, optionally
// seeded from a .env file.
//
// Any missing required value, invalid format, or violated threshold
// invariant causes loading to fail before any evaluation occurs.
package config

import (
	"time"

	"comfortadvisor/internal/types"
	"comfortadvisor/internal/units"
)

// Config is the top-level configuration struct for the comfort advisor.
// It is populated once during process initialization and never modified.
// Sub-components receive only the specific config subsets they require.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// UnitSystem selects the unit family for configured thresholds, sensor
	// readings, and displayed values. Internally everything is Celsius.
	UnitSystem string `envconfig:"UNIT_SYSTEM" default:"metric" validate:"oneof=metric imperial"`

	Provider ProviderConfig
	Inputs   InputConfig
	Comfort  ComfortConfig
	Device   DeviceConfig
}

// ProviderConfig selects the forecast sample source.
type ProviderConfig struct {
	Type string `envconfig:"WEATHER_PROVIDER" default:"fake" validate:"oneof=fake scripted"`
	// ScriptPath is the JSON fixture consumed by the scripted provider.
	ScriptPath string `envconfig:"WEATHER_SCRIPT_PATH" validate:"required_if=Type scripted"`
}

// InputConfig names the sensor entities supplying measurements. The pollen
// sensor is optional; when empty, pollen comes from the weather provider.
type InputConfig struct {
	IndoorTemperatureSensor  string `envconfig:"INDOOR_TEMPERATURE_SENSOR" validate:"required"`
	IndoorHumiditySensor     string `envconfig:"INDOOR_HUMIDITY_SENSOR" validate:"required"`
	OutdoorTemperatureSensor string `envconfig:"OUTDOOR_TEMPERATURE_SENSOR" validate:"required"`
	OutdoorHumiditySensor    string `envconfig:"OUTDOOR_HUMIDITY_SENSOR" validate:"required"`
	OutdoorPollenSensor      string `envconfig:"OUTDOOR_POLLEN_SENSOR"`

	// ReadingsPath is an optional JSON file mapping sensor entity IDs to
	// their current readings, used to seed the device at startup when no
	// live host is pushing updates.
	ReadingsPath string `envconfig:"SENSOR_READINGS_PATH"`
}

// ComfortConfig holds the user-chosen comfort thresholds, expressed in the
// configured unit system. Defaults are Celsius equivalents of the 70-85°F
// simmer band and 60°F dew point ceiling.
type ComfortConfig struct {
	SimmerIndexMin  float64       `envconfig:"SIMMER_INDEX_MIN" default:"21.1"`
	SimmerIndexMax  float64       `envconfig:"SIMMER_INDEX_MAX" default:"29.4"`
	DewPointMax     float64       `envconfig:"DEW_POINT_MAX" default:"15.6"`
	HumidityMax     float64       `envconfig:"HUMIDITY_MAX" default:"95" validate:"gte=0,lte=100"`
	PollenMax       int           `envconfig:"POLLEN_MAX" default:"2" validate:"gte=0,lte=5"`
	PollenEnabled   bool          `envconfig:"POLLEN_ENABLED" default:"true"`
	ForecastHorizon time.Duration `envconfig:"FORECAST_HORIZON" default:"12h"`
}

// DeviceConfig holds host-facing device options.
type DeviceConfig struct {
	Name string `envconfig:"DEVICE_NAME" default:"Comfort Advisor"`
	// EnabledSensors restricts which output sensors are surfaced. Empty
	// enables everything.
	EnabledSensors []string      `envconfig:"ENABLED_SENSORS"`
	Poll           bool          `envconfig:"POLL_ENABLED" default:"false"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`
	CustomIconPack bool          `envconfig:"USE_CUSTOM_ICON_PACK" default:"false"`
}

// Units returns the configured unit system as a typed value.
func (c *Config) Units() types.UnitSystem {
	return types.UnitSystem(c.UnitSystem)
}

// Thresholds converts the configured comfort band into the engine's internal
// Celsius threshold set. Pollen gating honors PollenEnabled.
func (c *Config) Thresholds() types.ComfortThresholds {
	t := types.ComfortThresholds{
		SimmerIndexMin: c.Comfort.SimmerIndexMin,
		SimmerIndexMax: c.Comfort.SimmerIndexMax,
		DewPointMax:    c.Comfort.DewPointMax,
		HumidityMax:    c.Comfort.HumidityMax,
	}
	if c.Comfort.PollenEnabled {
		pollenMax := float64(c.Comfort.PollenMax)
		t.PollenMax = &pollenMax
	}
	return units.NormalizeThresholds(t, c.Units())
}

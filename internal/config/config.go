// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Predict  PredictConfig  `yaml:"predict" mapstructure:"predict"`
	Weather  WeatherConfig  `yaml:"weather" mapstructure:"weather"`
	Geocode  GeocodeConfig  `yaml:"geocode" mapstructure:"geocode"`
	Location LocationConfig `yaml:"location" mapstructure:"location"`
	Form     FormConfig     `yaml:"form" mapstructure:"form"`
	Enrich   EnrichConfig   `yaml:"enrich" mapstructure:"enrich"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PredictConfig holds the yield prediction backend settings.
type PredictConfig struct {
	URL         string `yaml:"url" mapstructure:"url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// WeatherConfig holds the current-conditions API settings.
type WeatherConfig struct {
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// GeocodeConfig holds the reverse-geocoding API settings.
type GeocodeConfig struct {
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// LocationConfig holds the device coordinates used for enrichment.
// Coordinates count as configured only when Set is true; the CLI
// flips it when both --lat and --lon flags are present.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude" mapstructure:"latitude"`
	Longitude float64 `yaml:"longitude" mapstructure:"longitude"`
	Set       bool    `yaml:"set" mapstructure:"set"`
}

// FormConfig holds initial values for the soil parameter form.
// Values are raw field text, coerced at submit time.
type FormConfig struct {
	Nitrogen    string `yaml:"nitrogen" mapstructure:"nitrogen"`
	Phosphorus  string `yaml:"phosphorus" mapstructure:"phosphorus"`
	Potassium   string `yaml:"potassium" mapstructure:"potassium"`
	Temperature string `yaml:"temperature" mapstructure:"temperature"`
	Humidity    string `yaml:"humidity" mapstructure:"humidity"`
	PH          string `yaml:"ph" mapstructure:"ph"`
	Rainfall    string `yaml:"rainfall" mapstructure:"rainfall"`
	InputCost   string `yaml:"input_cost" mapstructure:"input_cost"`
	CropType    string `yaml:"crop_type" mapstructure:"crop_type"`
}

// EnrichConfig configures the location enrichment flow.
type EnrichConfig struct {
	StatusClearSecs int `yaml:"status_clear_secs" mapstructure:"status_clear_secs"`
	TimeoutSecs     int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AGRI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("predict.url", "http://127.0.0.1:5000/predict")
	v.SetDefault("predict.timeout_secs", 30)
	v.SetDefault("weather.base_url", "https://api.open-meteo.com")
	v.SetDefault("weather.rate_limit", 10)
	v.SetDefault("geocode.base_url", "https://api.bigdatacloud.net")
	v.SetDefault("geocode.rate_limit", 10)
	v.SetDefault("enrich.status_clear_secs", 3)
	v.SetDefault("enrich.timeout_secs", 30)
	v.SetDefault("form.nitrogen", "50")
	v.SetDefault("form.phosphorus", "50")
	v.SetDefault("form.potassium", "50")
	v.SetDefault("form.temperature", "26")
	v.SetDefault("form.humidity", "80")
	v.SetDefault("form.ph", "6.5")
	v.SetDefault("form.rainfall", "200")
	v.SetDefault("form.input_cost", "0")
	v.SetDefault("form.crop_type", "rice")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

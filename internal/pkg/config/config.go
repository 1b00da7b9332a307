package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, channel API
//   endpoint and credentials), security settings
// - default: values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	ChannelAPI ChannelAPIConfig
	Wizard     WizardConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type ChannelAPIConfig struct {
	BaseURL string        `envconfig:"CHANNEL_API_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"CHANNEL_API_KEY" required:"true"`
	Timeout time.Duration `envconfig:"CHANNEL_API_TIMEOUT" default:"15s"`
}

type WizardConfig struct {
	SessionTTL    time.Duration `envconfig:"WIZARD_SESSION_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"WIZARD_SWEEP_INTERVAL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		ChannelAPI: ChannelAPIConfig{
			BaseURL: "http://localhost:18080",
			APIKey:  "test-key",
			Timeout: 2 * time.Second,
		},
		Wizard: WizardConfig{
			SessionTTL:    time.Hour,
			SweepInterval: time.Minute,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}

package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"recdict/dict"
	"recdict/internal/logger"
	"recdict/orm"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "recdict"

// Keys read from flags, environment and config files.
const (
	KeyMethod         = "method"
	KeyDateLayout     = "date-layout"
	KeyDateTimeLayout = "datetime-layout"
	KeyTimeLayout     = "time-layout"
	KeyMediaURL       = "media-url"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
	KeyLogFile        = "log-file"
	KeyMetrics        = "metrics"
)

// Config is the resolved runtime configuration.
type Config struct {
	Method   string
	Layouts  dict.Layouts
	MediaURL string
	Log      logger.Config
	Metrics  bool
}

// Init loads .env files and points viper at the environment.
func Init(v *viper.Viper) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyMethod, dict.DefaultMethod)
	v.SetDefault(KeyDateLayout, dict.DateLayout)
	v.SetDefault(KeyDateTimeLayout, dict.DateTimeLayout)
	v.SetDefault(KeyTimeLayout, dict.TimeLayout)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Load reads the configuration from v.
func Load(v *viper.Viper) Config {
	return Config{
		Method: v.GetString(KeyMethod),
		Layouts: dict.Layouts{
			Date:     v.GetString(KeyDateLayout),
			DateTime: v.GetString(KeyDateTimeLayout),
			Time:     v.GetString(KeyTimeLayout),
		},
		MediaURL: v.GetString(KeyMediaURL),
		Log: logger.Config{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
		Metrics: v.GetBool(KeyMetrics),
	}
}

// Storage returns the file storage for MediaURL, or nil when unset.
func (c Config) Storage() orm.Storage {
	if c.MediaURL == "" {
		return nil
	}

	return orm.FileSystemStorage{BaseURL: c.MediaURL}
}

// SerializerOptions turns the configuration into dict options.
func (c Config) SerializerOptions() []dict.Option {
	opts := []dict.Option{
		dict.WithMethod(c.Method),
		dict.WithLayouts(c.Layouts),
		dict.WithLogger(logger.L()),
	}

	if st := c.Storage(); st != nil {
		opts = append(opts, dict.WithStorage(st))
	}

	return opts
}

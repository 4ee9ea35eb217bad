package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar grid
	Calendar  CalendarConfig
	Cache     CacheConfig
	Selection SelectionConfig

	// Event sources
	Gateway        GatewayConfig
	GoogleCalendar GoogleCalendarConfig

	// Rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CalendarConfig describes the grid the service reasons about.
type CalendarConfig struct {
	Timezone        string // IANA name; "Local" uses the host zone
	StartHour       int
	EndHour         int
	SlotMinutes     int
	SlotPixelHeight float64
	DefaultLimit    int
	MaxOccurrences  int
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type SelectionConfig struct {
	MaxSessions int
	TTL         time.Duration
}

type GatewayConfig struct {
	URL       string
	APIKey    string
	Timeout   time.Duration
	Providers []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type RateLimitConfig struct {
	CreatePerMin int
}

// Load loads configuration using Viper.
// The file is config.yaml, searched in ./config, . and /etc/app/.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Calendar grid
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.StartHour = viper.GetInt("calendar.start_hour")
	cfg.Calendar.EndHour = viper.GetInt("calendar.end_hour")
	cfg.Calendar.SlotMinutes = viper.GetInt("calendar.slot_minutes")
	cfg.Calendar.SlotPixelHeight = viper.GetFloat64("calendar.slot_pixel_height")
	cfg.Calendar.DefaultLimit = viper.GetInt("calendar.default_limit")
	cfg.Calendar.MaxOccurrences = viper.GetInt("calendar.max_occurrences")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Selection.MaxSessions = viper.GetInt("selection.max_sessions")
	cfg.Selection.TTL = viper.GetDuration("selection.ttl")

	// Event sources
	cfg.Gateway.URL = viper.GetString("gateway.url")
	cfg.Gateway.APIKey = viper.GetString("gateway.api_key")
	cfg.Gateway.Timeout = viper.GetDuration("gateway.timeout")
	cfg.Gateway.Providers = splitList(viper.GetStringSlice("gateway.providers"))
	if gatewayKey := viper.GetString("gateway_api_key"); gatewayKey != "" {
		cfg.Gateway.APIKey = gatewayKey
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.RateLimit.CreatePerMin = viper.GetInt("rate_limit.create_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Calendar.StartHour < 0 || cfg.Calendar.EndHour > 23 || cfg.Calendar.StartHour > cfg.Calendar.EndHour {
		return fmt.Errorf("calendar hours %d..%d are out of range", cfg.Calendar.StartHour, cfg.Calendar.EndHour)
	}
	if cfg.Calendar.SlotMinutes <= 0 || 60%cfg.Calendar.SlotMinutes != 0 {
		return fmt.Errorf("calendar.slot_minutes must divide an hour")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("calendar.timezone", "Local")
	viper.SetDefault("calendar.start_hour", 6)
	viper.SetDefault("calendar.end_hour", 22)
	viper.SetDefault("calendar.slot_minutes", 15)
	viper.SetDefault("calendar.slot_pixel_height", 24)
	viper.SetDefault("calendar.default_limit", 250)
	viper.SetDefault("calendar.max_occurrences", 1000)

	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "2m")
	viper.SetDefault("selection.max_sessions", 1000)
	viper.SetDefault("selection.ttl", "10m")

	viper.SetDefault("gateway.timeout", "15s")
	viper.SetDefault("gateway.providers", []string{"google", "microsoft"})
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("rate_limit.create_per_min", 30)
}

// splitList flattens comma separated entries, since env overrides arrive as one string.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, v := range strings.Split(entry, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

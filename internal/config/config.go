// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types and validates
// that required values are present so the rest of the service can rely
// on them.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional blocks (observability, app).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix CONNECTLIST_. Keys are lowercased
	and the prefix is removed. Nesting uses the "." delimiter, so

	  CONNECTLIST_SERVER.PORT -> server.port -> Config.Server.Port
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "CONNECTLIST_"

// ServiceName tags logs, traces and APM data.
const ServiceName = "connectlist"

// Config is the root configuration object for the application.
//
// Integration and App are optional blocks: a missing provider secret is not
// a startup error, it surfaces as a 500 on the function that needs it.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	App           AppConfig            `koanf:"app"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port".
type RedisConfig struct {
	Address  string `koanf:"address" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"min=0"`
}

// AuthConfig stores the Clerk secret key.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntegrationConfig holds third-party provider credentials.
//
// Every field is optional. The function handlers check for the value they
// need and answer 500 with a descriptive message when it is missing.
type IntegrationConfig struct {
	ResendAPIKey       string `koanf:"resend_api_key"`
	MailtrapAPIToken   string `koanf:"mailtrap_api_token"`
	SMTPHost           string `koanf:"smtp_host"`
	SMTPPort           int    `koanf:"smtp_port"`
	SMTPUsername       string `koanf:"smtp_username"`
	SMTPPassword       string `koanf:"smtp_password"`
	EmailFrom          string `koanf:"email_from"`
	GooglePlacesAPIKey string `koanf:"google_places_api_key"`
	FigmaAccessToken   string `koanf:"figma_access_token"`
	GeminiAPIKey       string `koanf:"gemini_api_key"`
	GeminiModel        string `koanf:"gemini_model"`
}

// AppConfig carries application-level knobs used by the functions.
type AppConfig struct {
	// BaseURL is the public origin of the web client, used to build sitemap URLs.
	BaseURL string `koanf:"base_url" validate:"omitempty,url"`

	SitemapCacheTTL time.Duration `koanf:"sitemap_cache_ttl"`
	SitemapMaxLists int           `koanf:"sitemap_max_lists" validate:"omitempty,min=1,max=50000"`
	PlacesCacheTTL  time.Duration `koanf:"places_cache_ttl"`
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	// RateLimit is the sustained requests per second allowed per client IP
	// on the function routes, RateLimitBurst the bucket size.
	RateLimit      float64 `koanf:"rate_limit" validate:"omitempty,gt=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"omitempty,min=1"`
}

const (
	DefaultBaseURL         = "https://connectlist.me"
	DefaultEmailFrom       = "ConnectList <notifications@connectlist.me>"
	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultSMTPPort        = 587
	DefaultSitemapCacheTTL = time.Hour
	DefaultSitemapMaxLists = 5000
	DefaultPlacesCacheTTL  = 10 * time.Minute
	DefaultUpstreamTimeout = 15 * time.Second
	DefaultRateLimit       = 10
	DefaultRateLimitBurst  = 30
)

// applyDefaults fills optional blocks with their default values.
func (c *Config) applyDefaults() {
	if c.App.BaseURL == "" {
		c.App.BaseURL = DefaultBaseURL
	}
	c.App.BaseURL = strings.TrimRight(c.App.BaseURL, "/")

	if c.App.SitemapCacheTTL == 0 {
		c.App.SitemapCacheTTL = DefaultSitemapCacheTTL
	}
	if c.App.SitemapMaxLists == 0 {
		c.App.SitemapMaxLists = DefaultSitemapMaxLists
	}
	if c.App.PlacesCacheTTL == 0 {
		c.App.PlacesCacheTTL = DefaultPlacesCacheTTL
	}
	if c.App.UpstreamTimeout == 0 {
		c.App.UpstreamTimeout = DefaultUpstreamTimeout
	}
	if c.App.RateLimit == 0 {
		c.App.RateLimit = DefaultRateLimit
	}
	if c.App.RateLimitBurst == 0 {
		c.App.RateLimitBurst = DefaultRateLimitBurst
	}

	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = DefaultEmailFrom
	}
	if c.Integration.GeminiModel == "" {
		c.Integration.GeminiModel = DefaultGeminiModel
	}
	if c.Integration.SMTPPort == 0 {
		c.Integration.SMTPPort = DefaultSMTPPort
	}

	// If observability config wasn't provided, inject a default.
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always come from the primary block so
	// logs and traces see consistent values.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it and applies defaults.
//
// Behavior summary:
//   - Loads env vars with prefix CONNECTLIST_
//   - Unmarshals into Config (durations accept "10m", "1h", ...)
//   - Validates required config blocks/fields
//   - Injects defaults for optional blocks
//   - Validates the observability block with its own rules
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}

	// "" means unmarshal everything from the root.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// IsLocal reports whether the service runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// DefaultDatabase is used when neither MONGODB_DATABASE nor the URI path names one.
const DefaultDatabase = "adfriend"

// Config contains runtime configuration required by the service.
type Config struct {
	Port                   string        `koanf:"port" validate:"required,numeric"`
	MongoURI               string        `koanf:"mongodb_uri" validate:"required"`
	MongoDatabase          string        `koanf:"mongodb_database"`
	ServerSelectionTimeout time.Duration `koanf:"mongodb_server_selection_timeout" validate:"gt=0"`
	CORSAllowedOrigins     []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
	LogLevel               string        `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat              string        `koanf:"log_format" validate:"oneof=json console"`
	MetricsEnabled         bool          `koanf:"metrics_enabled"`
	ShutdownTimeout        time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// envKeys maps the environment variables we read to koanf keys.
// Anything not listed is ignored.
var envKeys = map[string]string{
	"PORT":                             "port",
	"MONGODB_URI":                      "mongodb_uri",
	"MONGODB_DATABASE":                 "mongodb_database",
	"MONGODB_SERVER_SELECTION_TIMEOUT": "mongodb_server_selection_timeout",
	"CORS_ALLOWED_ORIGINS":             "cors_allowed_origins",
	"LOG_LEVEL":                        "log_level",
	"LOG_FORMAT":                       "log_format",
	"METRICS_ENABLED":                  "metrics_enabled",
	"SHUTDOWN_TIMEOUT":                 "shutdown_timeout",
}

// Default returns the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		Port:                   "3000",
		MongoURI:               "mongodb://localhost:27017/" + DefaultDatabase,
		ServerSelectionTimeout: 10 * time.Second,
		CORSAllowedOrigins:     []string{"*"},
		LogLevel:               "info",
		LogFormat:              "json",
		MetricsEnabled:         true,
		ShutdownTimeout:        10 * time.Second,
	}
}

// Load reads values from environment variables on top of Default.
// CORS_ALLOWED_ORIGINS format: "https://a.example,https://b.example"
func Load() (Config, error) {
	k := koanf.New(".")

	// Blank variables are treated as unset.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		k := envKeys[key]
		if k == "cors_allowed_origins" {
			return k, strings.Split(value, ",")
		}
		return k, value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	// Unmarshal only overwrites keys that were set, so defaults survive.
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	cs, err := connstring.ParseAndValidate(cfg.MongoURI)
	if err != nil {
		return Config{}, fmt.Errorf("MONGODB_URI: %w", err)
	}

	// Database name precedence: explicit MONGODB_DATABASE, then URI path, then default.
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = cs.Database
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = DefaultDatabase
	}

	return cfg, nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

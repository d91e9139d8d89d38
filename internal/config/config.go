// Package config loads bmitracker settings from flags, environment, .env and
// an optional bmitracker.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"bmitracker/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Store  StoreConfig
	HTTP   HTTPConfig
	Log    LogConfig
	Limits domain.Limits
}

type StoreConfig struct {
	Driver string
	// Path is the SQLite database file.
	Path string
	// DSN is the PostgreSQL connection string.
	DSN string
}

type HTTPConfig struct {
	Addr string
}

type LogConfig struct {
	Level  string
	Format string
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"store":      "store.driver",
	"db":         "store.path",
	"dsn":        "store.dsn",
	"addr":       "http.addr",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load reads configuration. Precedence: flags, environment (BMI_ prefix,
// dots become underscores), .env, config file, defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "bmi_database.db")
	v.SetDefault("store.dsn", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("limits.max_weight_kg", domain.DefaultLimits.MaxWeightKg)
	v.SetDefault("limits.max_height_m", domain.DefaultLimits.MaxHeightM)

	v.SetEnvPrefix("BMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store.dsn", "BMI_STORE_DSN", "DATABASE_URL"); err != nil {
		return Config{}, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	file := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			file = f.Value.String()
		}
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("bmitracker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bmitracker")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("store.driver"))),
			Path:   strings.TrimSpace(v.GetString("store.path")),
			DSN:    strings.TrimSpace(v.GetString("store.dsn")),
		},
		HTTP: HTTPConfig{Addr: v.GetString("http.addr")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Limits: domain.Limits{
			MaxWeightKg: v.GetFloat64("limits.max_weight_kg"),
			MaxHeightM:  v.GetFloat64("limits.max_height_m"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected store has what it needs.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the sqlite store")
		}
	case DriverPostgres:
		if c.Store.DSN == "" {
			return errors.New("store.dsn (or DATABASE_URL) is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q (want %s, %s or %s)", c.Store.Driver, DriverSQLite, DriverPostgres, DriverMemory)
	}
	return nil
}

// Package config reads runtime settings. Precedence is flag, then
// environment (optionally populated from a .env file by the caller), then
// the built-in default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Addr            string         `mapstructure:"addr"`
	Driver          string         `mapstructure:"driver"`
	Postgres        PostgresConfig `mapstructure:"postgres"`
	SQLitePath      string         `mapstructure:"sqlite_path"`
	AllowedOrigins  []string       `mapstructure:"allowed_origins"`
	LogLevel        string         `mapstructure:"log_level"`
	LogFormat       string         `mapstructure:"log_format"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ConnString builds a lib/pq URL; credentials are escaped.
func (c PostgresConfig) ConnString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

type setting struct {
	key   string
	env   string
	flag  string
	value any
	usage string
}

var settings = []setting{
	{"addr", "ADDR", "addr", "0.0.0.0:8080", "HTTP listen address"},
	{"driver", "DB_DRIVER", "db-driver", DriverPostgres, "Database driver (postgres or sqlite)"},
	{"postgres.host", "POSTGRES_HOST", "db-host", "", "Database host"},
	{"postgres.port", "POSTGRES_PORT", "db-port", "5432", "Database port"},
	{"postgres.user", "POSTGRES_USER", "db-user", "", "Database user"},
	{"postgres.password", "POSTGRES_PASSWORD", "db-pass", "", "Database password"},
	{"postgres.name", "POSTGRES_DB", "db-name", "", "Database name"},
	{"postgres.sslmode", "POSTGRES_SSLMODE", "db-sslmode", "disable", "Database SSL mode"},
	{"sqlite_path", "SQLITE_PATH", "sqlite-path", "nominate.db", "SQLite database file"},
	{"allowed_origins", "CORS_ALLOWED_ORIGINS", "cors-origins", []string{"*"}, "Comma separated allowed CORS origins"},
	{"log_level", "LOG_LEVEL", "log-level", "info", "Log level (debug, info, warn, error)"},
	{"log_format", "LOG_FORMAT", "log-format", "text", "Log format (text or json)"},
	{"shutdown_timeout", "SHUTDOWN_TIMEOUT", "shutdown-timeout", 30 * time.Second, "Graceful shutdown timeout"},
}

// Load parses args into a Config.
func Load(name string, args []string) (Config, error) {
	v := viper.New()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	keys := make(map[string]string, len(settings))
	for _, s := range settings {
		v.SetDefault(s.key, s.value)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return Config{}, err
		}
		fs.String(s.flag, "", fmt.Sprintf("%s (env %s, default %v)", s.usage, s.env, s.value))
		keys[s.flag] = s.key
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	// Only flags given on the command line override the environment.
	fs.Visit(func(f *flag.Flag) {
		v.Set(keys[f.Name], f.Value.String())
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	origins := cfg.AllowedOrigins[:0]
	for _, origin := range cfg.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.AllowedOrigins = origins

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Postgres.Host == "" || c.Postgres.Name == "" {
			return errors.New("POSTGRES_HOST and POSTGRES_DB are required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Driver)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

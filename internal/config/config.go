package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

// Config is resolved once at startup and handed to whatever needs it.
type Config struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Driver   string

	MaxOpenConns int
	MaxIdleConns int

	ListenPort string
	LogLevel   string
	LogFormat  string
}

// Load reads the configuration from the environment. A .env file in the working
// directory is honoured when present.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Host:       get("DB_HOST", ""),
		Port:       get("DB_PORT", "5432"),
		Name:       get("DB_NAME", ""),
		User:       get("DB_USER", ""),
		SSLMode:    get("DB_SSLMODE", "require"),
		Driver:     get("DB_DRIVER", DriverPQ),
		ListenPort: get("PORT", "8080"),
		LogLevel:   get("LOG_LEVEL", "info"),
		LogFormat:  get("LOG_FORMAT", "text"),
	}
	// passwords are taken verbatim; an explicitly empty one is allowed for trust/peer auth
	password, hasPassword := lookup("DB_PASSWORD")
	cfg.Password = password

	var missing []string
	for _, req := range []struct{ key, val string }{
		{"DB_HOST", cfg.Host},
		{"DB_NAME", cfg.Name},
		{"DB_USER", cfg.User},
	} {
		if req.val == "" {
			missing = append(missing, req.key)
		}
	}
	if !hasPassword {
		missing = append(missing, "DB_PASSWORD")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT %q: %w", cfg.Port, err)
	}
	if cfg.Driver != DriverPQ && cfg.Driver != DriverPGX {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", cfg.Driver, DriverPQ, DriverPGX)
	}

	var err error
	if cfg.MaxOpenConns, err = positiveInt(get("DB_MAX_OPEN_CONNS", "10")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.MaxIdleConns, err = positiveInt(get("DB_MAX_IDLE_CONNS", "5")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}
	return cfg, nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

// DSN renders the connection URL understood by both lib/pq and pgx.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.Name,
	}
	if c.Password == "" {
		u.User = url.User(c.User)
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

package config

import (
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"DB_HOST":     "db.internal",
		"DB_NAME":     "Investment_Management_System",
		"DB_USER":     "reporter",
		"DB_PASSWORD": "s3cret@pw",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, DriverPQ, cfg.Driver)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, "8080", cfg.ListenPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromLookup_MissingCredentials(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"DB_HOST": "localhost"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestFromLookup_Overrides(t *testing.T) {
	env := baseEnv()
	env["DB_PORT"] = "6543"
	env["DB_DRIVER"] = "pgx"
	env["DB_SSLMODE"] = "disable"
	env["DB_MAX_OPEN_CONNS"] = "3"
	env["PORT"] = "9000"

	cfg, err := FromLookup(lookupFrom(env))
	require.NoError(t, err)
	assert.Equal(t, "6543", cfg.Port)
	assert.Equal(t, DriverPGX, cfg.Driver)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, 3, cfg.MaxOpenConns)
	assert.Equal(t, "9000", cfg.ListenPort)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]string{
		"DB_PORT":           "fivefour",
		"DB_DRIVER":         "mysql",
		"DB_MAX_OPEN_CONNS": "0",
		"DB_MAX_IDLE_CONNS": "-2",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			env := baseEnv()
			env[key] = val
			_, err := FromLookup(lookupFrom(env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestDSN_EscapesPassword(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(baseEnv()))
	require.NoError(t, err)

	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/Investment_Management_System", u.Path)
	assert.Equal(t, "reporter", u.User.Username())
	pw, _ := u.User.Password()
	assert.Equal(t, "s3cret@pw", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}

func TestNewLogger(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"DB_HOST": "h", "DB_NAME": "n", "DB_USER": "u", "DB_PASSWORD": "p",
		"LOG_LEVEL": "debug", "LOG_FORMAT": "json",
	}))
	require.NoError(t, err)

	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.LogLevel = "loud"
	assert.Equal(t, logrus.InfoLevel, cfg.NewLogger().GetLevel())
}

func TestFromLookup_EmptyPasswordAllowed(t *testing.T) {
	env := baseEnv()
	env["DB_PASSWORD"] = ""

	cfg, err := FromLookup(lookupFrom(env))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Password)

	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "reporter", u.User.Username())
	_, set := u.User.Password()
	assert.False(t, set)
}

func TestFromLookup_UnsetPasswordRejected(t *testing.T) {
	env := baseEnv()
	delete(env, "DB_PASSWORD")

	_, err := FromLookup(lookupFrom(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

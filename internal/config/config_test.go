package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(fakeEnv(map[string]string{
		"PORT":                 "9090",
		"DB_HOST":              "db",
		"DB_NAME":              "nc_news",
		"DB_MAX_OPEN_CONNS":    "25",
		"DB_CONN_MAX_LIFETIME": "30m",
		"CORS_ALLOW_ORIGINS":   "https://a.example, https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "nc_news", cfg.Database.Name)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS)
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(fakeEnv(map[string]string{"DB_MAX_IDLE_CONNS": "lots"}))
	assert.ErrorContains(t, err, "DB_MAX_IDLE_CONNS")
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newsapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
database:
  host: yaml-host
  name: from_yaml
  max_idle_conns: 3
`), 0o600))

	t.Setenv("DB_NAME", "from_env")
	for _, key := range []string{"DB_HOST", "DB_MAX_IDLE_CONNS", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml-host", cfg.Database.Host)
	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, 3, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
}

func TestDSN(t *testing.T) {
	d := Database{Host: "h", Port: "1", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable TimeZone=UTC", d.DSN())

	d.URL = "postgres://u:p@h:1/n"
	assert.Equal(t, "postgres://u:p@h:1/n", d.DSN())
}

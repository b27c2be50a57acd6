package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "/panel", cfg.Guard.ProtectedPrefix)
	assert.Equal(t, "/login", cfg.Guard.LoginPath)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 15*time.Second, cfg.API.DashboardPushInterval)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	content := []byte(`
server:
  port: "9090"
database:
  type: sqlite
  path: /tmp/church-test.db
security:
  jwt_secret: from-file
  bcrypt_cost: 4
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Run("file values", func(t *testing.T) {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "/tmp/church-test.db", cfg.GetDatabaseDSN())
		assert.Equal(t, "from-file", cfg.Security.JWTSecret)
		// cost is clamped to the bcrypt floor
		assert.Equal(t, 10, cfg.Security.BcryptCost)
	})

	t.Run("JWT_SECRET overrides file", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "from-env")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Security.JWTSecret)
	})
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Type: "sqlite", Path: "x.db"},
			Guard:    GuardConfig{ProtectedPrefix: "/panel", LoginPath: "/login"},
			Security: SecurityConfig{BcryptCost: 12},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(base()))
	})

	t.Run("unsupported database", func(t *testing.T) {
		cfg := base()
		cfg.Database.Type = "mysql"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("postgres without host", func(t *testing.T) {
		cfg := base()
		cfg.Database.Type = "postgres"
		assert.Error(t, validateConfig(cfg))

		cfg.Database.URL = "postgres://u:p@localhost/church?sslmode=disable"
		assert.NoError(t, validateConfig(cfg))
	})

	t.Run("login under protected prefix", func(t *testing.T) {
		cfg := base()
		cfg.Guard.LoginPath = "/panel/login"
		assert.Error(t, validateConfig(cfg))
	})
}

func TestSanitizeForLogging(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "pw", URL: "postgres://u:pw@h/db"},
		Security: SecurityConfig{JWTSecret: "secret"},
	}

	sanitized := cfg.SanitizeForLogging()
	assert.Equal(t, "[REDACTED]", sanitized.Database.Password)
	assert.Equal(t, "[REDACTED]", sanitized.Database.URL)
	assert.Equal(t, "[REDACTED]", sanitized.Security.JWTSecret)
	assert.Equal(t, "secret", cfg.Security.JWTSecret)
}

func TestGetDatabaseDSNPostgres(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Type: "postgres", Host: "db", Port: 5432, User: "church", Password: "pw", DBName: "church",
	}}
	assert.Equal(t, "host=db port=5432 user=church password=pw dbname=church sslmode=disable", cfg.GetDatabaseDSN())
}

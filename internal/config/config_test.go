package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Thiccblique/Tusday.com/internal/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DB_DRIVER", "DB_PATH", "DB_PORT", "DB_LOG_LEVEL", "SERVER_PORT",
		"JWT_SECRET", "JWT_EXPIRY_HOURS", "BCRYPT_COST",
	} {
		unsetForTest(t, key)
	}

	cfg := config.Load()

	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "silent", cfg.DBLogLevel)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", config.DriverPostgres)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "alice")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "boards")
	t.Setenv("JWT_EXPIRY_HOURS", "48")
	t.Setenv("BCRYPT_COST", "4")

	cfg := config.Load()

	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 48, cfg.JWTExpiryHours)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, "host=db.internal port=6543 user=alice password=pw dbname=boards sslmode=disable", cfg.DSN())
}

func TestLoad_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	cfg := config.Load()

	assert.Equal(t, 24, cfg.JWTExpiryHours)
}

func TestLoad_DefaultDBPathUsesXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	unsetForTest(t, "DB_PATH")

	cfg := config.Load()

	assert.Equal(t, filepath.Join(xdg, "tusday", "tusday.db"), cfg.DBPath)
}

// unsetForTest removes key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

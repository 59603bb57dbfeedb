package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"EDIFICIO_APP_NAME":                os.Getenv("EDIFICIO_APP_NAME"),
		"EDIFICIO_APP_ENV":                 os.Getenv("EDIFICIO_APP_ENV"),
		"EDIFICIO_APP_PORT":                os.Getenv("EDIFICIO_APP_PORT"),
		"EDIFICIO_DATABASE_HOST":           os.Getenv("EDIFICIO_DATABASE_HOST"),
		"EDIFICIO_DATABASE_PORT":           os.Getenv("EDIFICIO_DATABASE_PORT"),
		"EDIFICIO_DATABASE_PASSWORD":       os.Getenv("EDIFICIO_DATABASE_PASSWORD"),
		"EDIFICIO_DATABASE_SSLMODE":        os.Getenv("EDIFICIO_DATABASE_SSLMODE"),
		"EDIFICIO_DATABASE_MAX_OPEN_CONNS": os.Getenv("EDIFICIO_DATABASE_MAX_OPEN_CONNS"),
		"EDIFICIO_DATABASE_MAX_IDLE_CONNS": os.Getenv("EDIFICIO_DATABASE_MAX_IDLE_CONNS"),
		"EDIFICIO_JWT_SECRET":              os.Getenv("EDIFICIO_JWT_SECRET"),
		"EDIFICIO_STORAGE_BUCKET":          os.Getenv("EDIFICIO_STORAGE_BUCKET"),
		"EDIFICIO_MAIL_HOST":               os.Getenv("EDIFICIO_MAIL_HOST"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "edificio-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "edificio", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "edificio-documents", cfg.Storage.Bucket)
		assert.Equal(t, 587, cfg.Mail.Port)
	})

	t.Run("loads values from environment variables with EDIFICIO prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("EDIFICIO_APP_NAME", "test-app")
		os.Setenv("EDIFICIO_APP_PORT", "9000")
		os.Setenv("EDIFICIO_DATABASE_HOST", "testdb.local")
		os.Setenv("EDIFICIO_DATABASE_PORT", "5433")
		os.Setenv("EDIFICIO_STORAGE_BUCKET", "test-bucket")
		os.Setenv("EDIFICIO_MAIL_HOST", "smtp.test.local")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "test-bucket", cfg.Storage.Bucket)
		assert.Equal(t, "smtp.test.local", cfg.Mail.Host)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("EDIFICIO_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("EDIFICIO_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires a strong JWT secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("EDIFICIO_APP_ENV", "production")
		os.Setenv("EDIFICIO_JWT_SECRET", "short")
		os.Setenv("EDIFICIO_DATABASE_PASSWORD", "secret")
		os.Setenv("EDIFICIO_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects sslmode disable", func(t *testing.T) {
		clearEnv()
		os.Setenv("EDIFICIO_APP_ENV", "production")
		os.Setenv("EDIFICIO_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		os.Setenv("EDIFICIO_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "edificio",
		Password: "p@ss/word",
		DBName:   "edificio",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfigAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[server]
http_port = 9090

[database]
host = "db"
password = "from-file"

[auth]
jwt_secret = "file-secret"

[scheduling]
timezone = "Europe/Moscow"
default_horizon_days = 5

[reminder]
offset_minutes = 45
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleTOML)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5, cfg.Scheduling.DefaultHorizonDays)
	assert.Equal(t, 31, cfg.Scheduling.MaxHorizonDays)
	assert.Equal(t, 45*time.Minute, cfg.Reminder.Offset())

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleTOML)
	envFile := writeFile(t, dir, ".env", "OFFICEHOURS_AUTH_JWT_SECRET=dotenv-secret\nOFFICEHOURS_DATABASE_PORT=6543\nOFFICEHOURS_DATABASE_DB_NAME=from_dotenv\n")

	// .env значения попадают в окружение процесса
	t.Cleanup(func() {
		os.Unsetenv("OFFICEHOURS_AUTH_JWT_SECRET")
		os.Unsetenv("OFFICEHOURS_DATABASE_DB_NAME")
	})
	t.Setenv("OFFICEHOURS_DATABASE_PASSWORD", "from-env")
	t.Setenv("OFFICEHOURS_DATABASE_PORT", "7000")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Database.Port, "process env wins over .env")
	assert.Equal(t, "dotenv-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "from_dotenv", cfg.Database.DBName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "zero horizon", mutate: func(c *Config) { c.Scheduling.DefaultHorizonDays = 0 }},
		{name: "max below default", mutate: func(c *Config) { c.Scheduling.MaxHorizonDays = 3 }},
		{name: "unknown timezone", mutate: func(c *Config) { c.Scheduling.Timezone = "Mars/Olympus" }},
		{name: "reminder offset", mutate: func(c *Config) { c.Reminder.OffsetMinutes = 0 }},
		{name: "rabbit without url", mutate: func(c *Config) {
			c.RabbitMQ.Enabled = true
			c.RabbitMQ.URL = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.JWTSecret = "secret"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "office_hours", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/office_hours?sslmode=disable", d.DSN())
}

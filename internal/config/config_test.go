package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 10

[database]
host = "db.local"
port = 5433
user = "svc"
password = "secret"
dbname = "calendars"
sslmode = "require"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 60

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "calendar-test"

[i18n]
messages_file = "messages.toml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "calendar-test", cfg.Metrics.ServiceName)
	assert.Equal(t, "messages.toml", cfg.I18n.MessagesFile)

	assert.Equal(t,
		"host=db.local port=5433 user=svc password=secret dbname=calendars sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[database]
host = "localhost"
port = 5432
user = "svc"
password = "secret"
dbname = "calendars"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "smc-calendar-service", cfg.Metrics.ServiceName)
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

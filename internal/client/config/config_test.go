package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.ReconnectInterval)
	assert.Equal(t, "uuidfeed.db", c.DBPath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.ReconnectInterval)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_endpoint_addr = "http://files:8080"
request_timeout = "2s"
reconnect_interval = "7s"
db_path = "/tmp/session.db"
`), 0o600))

	os.Args = []string{"testbin", "-c", path, "-a", "http://flags:8080"}

	cfg := LoadConfig()

	assert.Equal(t, "http://flags:8080", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.ReconnectInterval)
	assert.Equal(t, "/tmp/session.db", cfg.DBPath)
}

func Test_parseFile_JSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"http://json:1","reconnect_interval":"1s","log_format":"zap"}`), 0o600))
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)

	assert.Equal(t, "http://json:1", cfg.ServerEndpointAddr)
	assert.Equal(t, time.Second, cfg.ReconnectInterval)
	assert.Equal(t, "zap", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func Test_parseFile_InvalidPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	os.Args = []string{"testbin", "-c", path}

	require.Panics(t, func() { parseFile(&Config{}) })
}

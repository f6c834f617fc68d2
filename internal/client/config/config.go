package config

import "time"

// Config holds runtime settings for the uuidfeed client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the HTTP API.
//   - RequestTimeout: deadline for every HTTP call.
//   - ReconnectInterval: pause before resubscribing after the feed drops.
//   - DBPath: SQLite file holding the session id.
//   - LogLevel / LogFormat / LogFile: see logging.Options.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	ReconnectInterval  time.Duration
	DBPath             string
	LogLevel           string
	LogFormat          string
	LogFile            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 5 * time.Second
	c.ReconnectInterval = 3 * time.Second
	c.DBPath = "uuidfeed.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}

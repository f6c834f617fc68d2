package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/uuidfeed/internal/flagx"
	"github.com/dmitrijs2005/uuidfeed/internal/timex"
)

// FileConfig is a DTO used exclusively for file decoding. Empty fields leave
// the defaults in place.
type FileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr" toml:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout" toml:"request_timeout"`
	ReconnectInterval  timex.Duration `json:"reconnect_interval" toml:"reconnect_interval"`
	DBPath             string         `json:"db_path" toml:"db_path"`
	LogLevel           string         `json:"log_level" toml:"log_level"`
	LogFormat          string         `json:"log_format" toml:"log_format"`
	LogFile            string         `json:"log_file" toml:"log_file"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Read or decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			panic(err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(data, &fc); err != nil {
			panic(err)
		}
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ReconnectInterval.Duration > 0 {
		cfg.ReconnectInterval = fc.ReconnectInterval.Duration
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
}

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

// FileConfig is the on-disk shape of the configuration. Durations use
// timex.Duration so they can be written as "1s" in both JSON and TOML.
// Zero values leave the corresponding Config field untouched.
type FileConfig struct {
	EndpointAddrHTTP          string          `json:"endpoint_addr_http" toml:"endpoint_addr_http"`
	EndpointAddrGRPC          string          `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc"`
	PublicFeedAddr            string          `json:"public_feed_addr" toml:"public_feed_addr"`
	DatabaseDSN               string          `json:"database_dsn" toml:"database_dsn"`
	SecretKey                 string          `json:"secret_key" toml:"secret_key"`
	FeedTokenValidityDuration timex.Duration  `json:"feed_token_validity_duration" toml:"feed_token_validity_duration"`
	RequestTimeout            timex.Duration  `json:"request_timeout" toml:"request_timeout"`
	StatsCacheTTL             *timex.Duration `json:"stats_cache_ttl" toml:"stats_cache_ttl"`
	HistoryLimit              int             `json:"history_limit" toml:"history_limit"`
	BulkMaxCount              int             `json:"bulk_max_count" toml:"bulk_max_count"`
	ListenerRetryInterval     timex.Duration  `json:"listener_retry_interval" toml:"listener_retry_interval"`
	LogLevel                  string          `json:"log_level" toml:"log_level"`
	LogFormat                 string          `json:"log_format" toml:"log_format"`
	LogFile                   string          `json:"log_file" toml:"log_file"`
}

// parseFile overlays Config with values loaded from the file named by the
// -c or -config flag. Files ending in .toml are decoded as TOML, anything
// else as JSON. Read or decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	fc := &FileConfig{}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, fc); err != nil {
			panic(err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(data, fc); err != nil {
			panic(err)
		}
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&cfg.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&cfg.PublicFeedAddr, fc.PublicFeedAddr)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogFile, fc.LogFile)

	if fc.FeedTokenValidityDuration.Duration > 0 {
		cfg.FeedTokenValidityDuration = fc.FeedTokenValidityDuration.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	// an explicit zero disables the stats cache
	if fc.StatsCacheTTL != nil {
		cfg.StatsCacheTTL = fc.StatsCacheTTL.Duration
	}
	if fc.ListenerRetryInterval.Duration > 0 {
		cfg.ListenerRetryInterval = fc.ListenerRetryInterval.Duration
	}
	if fc.HistoryLimit > 0 {
		cfg.HistoryLimit = fc.HistoryLimit
	}
	if fc.BulkMaxCount > 0 {
		cfg.BulkMaxCount = fc.BulkMaxCount
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

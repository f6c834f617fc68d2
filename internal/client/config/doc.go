// Package config loads runtime configuration for the uuidfeed terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config (.json or .toml).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the HTTP API
//	-r int      feed reconnect interval (seconds)
//	-b string   path of the local session database
//	-l string   log level
//
// # File schema
//
// Durations may be strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "request_timeout": "5s",
//	  "reconnect_interval": "3s",
//	  "db_path": "uuidfeed.db"
//	}
package config

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the HTTP API (default from Config)
//	-r int      feed reconnect interval in seconds (default from Config)
//	-b string   path of the local session database
//	-l string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the server API")
	reconnectInterval := fs.Int("r", int(cfg.ReconnectInterval.Seconds()), "feed reconnect interval (in seconds)")
	fs.StringVar(&cfg.DBPath, "b", cfg.DBPath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReconnectInterval = time.Duration(*reconnectInterval) * time.Second
}

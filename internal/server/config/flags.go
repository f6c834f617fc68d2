package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC feed bind address (e.g., ":50051")
//	-f string   feed address advertised to clients
//	-d string   PostgreSQL DSN
//	-s string   feed token HMAC secret key
//	-t int      feed token validity, minutes
//	-l string   log level (debug, info, warn, error)
//	-o string   log file (rotated); empty logs to stdout
//
// Only the flags listed above are picked out of os.Args, via flagx.FilterArgs.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-f", "-d", "-s", "-t", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC feed address and port")
	fs.StringVar(&config.PublicFeedAddr, "f", config.PublicFeedAddr, "feed address advertised to clients")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	feedTokenValidity := fs.Int("t", int(config.FeedTokenValidityDuration.Minutes()), "feed token validity (in minutes)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFile, "o", config.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.FeedTokenValidityDuration = time.Duration(*feedTokenValidity) * time.Minute
}

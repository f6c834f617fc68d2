package config

import "github.com/dmitrijs2005/uuidfeed/internal/flagx"

// Environment variables recognised by parseEnv.
const (
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvSecretKey   = "SECRET_KEY"
	EnvHTTPAddress = "HTTP_ADDRESS"
	EnvGRPCAddress = "GRPC_ADDRESS"
)

// parseEnv overlays connection settings and credentials from the
// environment, which is how they are usually injected in deployments.
func parseEnv(cfg *Config) {
	flagx.EnvString(&cfg.DatabaseDSN, EnvDatabaseDSN)
	flagx.EnvString(&cfg.SecretKey, EnvSecretKey)
	flagx.EnvString(&cfg.EndpointAddrHTTP, EnvHTTPAddress)
	flagx.EnvString(&cfg.EndpointAddrGRPC, EnvGRPCAddress)
}

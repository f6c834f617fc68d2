package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvDatabaseDSN, "postgres://u:p@db:5432/x")
	t.Setenv(EnvSecretKey, "env-secret")
	t.Setenv(EnvHTTPAddress, ":9999")
	t.Setenv(EnvGRPCAddress, "")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "postgres://u:p@db:5432/x", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, ":9999", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC, "empty variable keeps the default")
}

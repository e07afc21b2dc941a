package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"test", "-b", "postgres", "-d", "postgres://localhost/ck", "-n", "testnet"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "postgres", cfg.Backend)
	assert.Equal(t, "postgres://localhost/ck", cfg.DatabaseDSN)
	assert.Equal(t, "testnet", cfg.Network)
	// Untouched flags keep their defaults.
	assert.Equal(t, "keystore.db", cfg.KeystorePath)
}

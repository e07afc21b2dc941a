package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into
// the runtime Config struct.
type JsonConfig struct {
	Backend       string `json:"backend"`
	DatabaseDSN   string `json:"database_dsn"`
	MasterSeedHex string `json:"master_seed_hex"`
	Network       string `json:"network"`
	KeystorePath  string `json:"keystore_path"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// Only non-empty JSON values override the current Config, so the file can
// specify a subset of fields.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.Backend != "" {
		config.Backend = c.Backend
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.MasterSeedHex != "" {
		config.MasterSeedHex = c.MasterSeedHex
	}
	if c.Network != "" {
		config.Network = c.Network
	}
	if c.KeystorePath != "" {
		config.KeystorePath = c.KeystorePath
	}
}

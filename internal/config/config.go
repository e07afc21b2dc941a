// Package config handles configuration for the coinkeeper CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for coinkeeper.
//
// Fields:
//   - Backend: account store engine, "sqlite" or "postgres".
//   - DatabaseDSN: PostgreSQL DSN (pgx) or SQLite file path, per Backend.
//   - MasterSeedHex: hex-encoded HD wallet master seed (16-64 bytes).
//     Held in memory for the process lifetime, never persisted.
//   - Network: address network, "mainnet", "testnet" or "simnet".
//   - KeystorePath: bbolt file holding the vault KDF salt.
type Config struct {
	Backend       string
	DatabaseDSN   string
	MasterSeedHex string
	Network       string
	KeystorePath  string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: The default seed is insecure and must be overridden outside of
// local development.
func (c *Config) LoadDefaults() {
	c.Backend = "sqlite"
	c.DatabaseDSN = "coinkeeper.db"
	c.MasterSeedHex = "000102030405060708090a0b0c0d0e0f"
	c.Network = "mainnet"
	c.KeystorePath = "keystore.db"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

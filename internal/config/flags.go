package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   account store backend ("sqlite" or "postgres")
//	-d string   database DSN (pgx DSN or SQLite file path)
//	-m string   master seed, hex encoded
//	-n string   address network ("mainnet", "testnet", "simnet")
//	-k string   keystore file path
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-m", "-n", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Backend, "b", config.Backend, "account store backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MasterSeedHex, "m", config.MasterSeedHex, "master seed (hex)")
	fs.StringVar(&config.Network, "n", config.Network, "address network")
	fs.StringVar(&config.KeystorePath, "k", config.KeystorePath, "keystore file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

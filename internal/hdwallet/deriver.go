// Package hdwallet derives deterministic per-user wallet addresses from a
// single master seed using BIP32 hierarchical key derivation.
package hdwallet

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// accountIndex is the fixed top-level child index under the master key.
// Per-user keys hang off this account at the email-derived selector index.
const accountIndex = 0

// Selector maps an email to a deterministic, non-secret child-key index:
// the first 4 bytes of SHA-256(email) as a big-endian uint32.
//
// Two emails whose 4-byte digest prefixes coincide map to the same index
// and therefore the same address; the collision probability is ~1 in 2^32
// and is accepted.
func Selector(email string) uint32 {
	digest := sha256.Sum256([]byte(email))
	return binary.BigEndian.Uint32(digest[:4])
}

// Deriver owns the master extended key for the process lifetime.
// The seed is never persisted and never leaves this package.
type Deriver struct {
	master *hdkeychain.ExtendedKey
	params *chaincfg.Params
}

// New builds a Deriver from the master seed. The seed must be between
// 16 and 64 bytes (hdkeychain's accepted range).
func New(seed []byte, params *chaincfg.Params) (*Deriver, error) {
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	return &Deriver{master: master, params: params}, nil
}

// Address derives the wallet address for an email. For a fixed seed it is
// a pure function of the email: no I/O, no randomness, idempotent.
//
// Path: master -> account 0 -> Selector(email), rendered as a P2PKH
// address for the configured network.
func (d *Deriver) Address(email string) (string, error) {
	account, err := d.master.Derive(accountIndex)
	if err != nil {
		return "", fmt.Errorf("failed to derive account key: %w", err)
	}

	child, err := account.Derive(Selector(email))
	if err != nil {
		return "", fmt.Errorf("failed to derive child key: %w", err)
	}

	pubKey, err := child.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("failed to get public key: %w", err)
	}

	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey.SerializeCompressed()), d.params)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// ParseNetwork maps a network name from configuration to chain parameters.
func ParseNetwork(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	}
	return nil, fmt.Errorf("unknown network %q", name)
}

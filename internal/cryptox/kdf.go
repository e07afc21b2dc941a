// Package cryptox implements the cryptographic core: vault key derivation,
// authenticated encryption of sensitive strings, and password hashing.
package cryptox

import (
	"crypto/sha256"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the vault KDF salt size in bytes.
	SaltSize = 16
	// KeySize is the AES-256 vault key size in bytes.
	KeySize = 32
	// KDFIterations is the PBKDF2 iteration count for vault keys.
	KDFIterations = 100000
)

// NewSalt returns a fresh random vault KDF salt.
//
// Note: a key derived from a fresh salt cannot decrypt tokens produced
// under a previous salt. Callers that need decryption across process runs
// must persist the salt (see the keystore package) and re-derive with
// DeriveVaultKey.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveVaultKey derives a 32-byte symmetric key from a user secret and
// salt using PBKDF2-HMAC-SHA256. The derivation is deterministic for a
// fixed (secret, salt) pair.
func DeriveVaultKey(secret, salt []byte) []byte {
	return pbkdf2.Key(secret, salt, KDFIterations, KeySize, sha256.New)
}

package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

const (
	tokenVersion = 0x01

	headerSize = 1 + 8 // version byte + big-endian unix timestamp
	nonceSize  = 12
	tagSize    = 16
)

// Vault provides authenticated encryption of opaque strings under a single
// key for the vault's lifetime.
//
// Token layout (before base64url encoding):
//
//	version (1) || unix timestamp (8, big-endian) || nonce (12) || ciphertext+tag
//
// The header is bound to the ciphertext as GCM additional data, so
// mutating any byte of a token makes Decrypt fail.
type Vault struct {
	aead cipher.AEAD
}

// NewVault builds a Vault bound to the given AES-256 key.
func NewVault(key []byte) (*Vault, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Vault{aead: aead}, nil
}

// timeNow is a test seam for the token timestamp.
var timeNow = time.Now

// Encrypt encrypts plaintext and returns a self-describing token.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	header := make([]byte, headerSize)
	header[0] = tokenVersion
	binary.BigEndian.PutUint64(header[1:], uint64(timeNow().Unix()))

	nonce := common.GenerateRandByteArray(nonceSize)

	token := make([]byte, 0, headerSize+nonceSize+len(plaintext)+tagSize)
	token = append(token, header...)
	token = append(token, nonce...)
	token = v.aead.Seal(token, nonce, []byte(plaintext), header)

	return base64.RawURLEncoding.EncodeToString(token), nil
}

// Decrypt authenticates and decrypts a token produced by Encrypt.
// Malformed, tampered, or foreign-key tokens fail with
// common.ErrorAuthentication; a wrong plaintext is never returned.
func (v *Vault) Decrypt(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", common.ErrorAuthentication
	}
	if len(raw) < headerSize+nonceSize+tagSize || raw[0] != tokenVersion {
		return "", common.ErrorAuthentication
	}

	header := raw[:headerSize]
	nonce := raw[headerSize : headerSize+nonceSize]
	ciphertext := raw[headerSize+nonceSize:]

	plaintext, err := v.aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return "", common.ErrorAuthentication
	}
	return string(plaintext), nil
}

// IssuedAt reports the timestamp embedded in a token without verifying it.
// The value is untrusted until Decrypt succeeds on the same token.
func IssuedAt(token string) (time.Time, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) < headerSize {
		return time.Time{}, common.ErrorAuthentication
	}
	return time.Unix(int64(binary.BigEndian.Uint64(raw[1:headerSize])), 0), nil
}

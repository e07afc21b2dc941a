// Package keystore persists the vault KDF salt in a local bbolt file so
// that a vault key re-derived in a later process run can decrypt tokens
// produced in earlier runs. Only the salt is stored; neither the user
// secret nor the derived key ever touches disk.
package keystore

import (
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/cryptox"
	bolt "go.etcd.io/bbolt"
)

var (
	configBucket = []byte("config")
	saltKey      = []byte("vault_salt")
)

// Store is a bbolt-backed keystore.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the keystore file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetOrCreateSalt returns the stored vault KDF salt, generating and
// persisting a fresh one on first use. The read-or-create decision runs
// inside a single write transaction.
func (s *Store) GetOrCreateSalt() ([]byte, error) {
	var salt []byte
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(configBucket)
		if err != nil {
			return err
		}
		if existing := bucket.Get(saltKey); existing != nil {
			// Copy out: the slice is only valid during the transaction.
			salt = append([]byte(nil), existing...)
			return nil
		}
		salt = cryptox.NewSalt()
		return bucket.Put(saltKey, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load vault salt: %w", err)
	}
	return salt, nil
}

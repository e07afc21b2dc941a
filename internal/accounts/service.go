// Package accounts implements the persisted user record lifecycle:
// registration ties an account to its derived owner key and wallet
// address, login is a binary authentication decision.
package accounts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/cryptox"
	"github.com/dmitrijs2005/coinkeeper/internal/hdwallet"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
)

// timeNow is a test seam for row timestamps.
var timeNow = time.Now

// Service provides account operations:
// - Register: create a user row with derived owner key and wallet address
// - Login: verify credentials against the stored hash
// - WalletAddress: derive the address for an email without persistence
type Service struct {
	repo    Repository
	deriver *hdwallet.Deriver
	logger  logging.Logger
}

// NewService constructs a Service over the given repository and deriver.
func NewService(repo Repository, deriver *hdwallet.Deriver, logger logging.Logger) *Service {
	return &Service{repo: repo, deriver: deriver, logger: logger}
}

// OwnerKey returns the hex SHA-256 digest of the email: a deterministic,
// one-way, non-secret account identifier.
func OwnerKey(email string) string {
	digest := sha256.Sum256([]byte(email))
	return hex.EncodeToString(digest[:])
}

// validateEmail rejects addresses net/mail cannot parse, plus anything
// where the parsed address differs from the input (display names,
// surrounding whitespace).
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.ErrorValidation
	}
	return nil
}

// Register creates a new account. It computes the owner key and wallet
// address from the email, hashes the password, and persists a single row
// with equal creation and update timestamps.
//
// Fails with common.ErrorValidation for a malformed email and
// common.ErrorAlreadyExists when the username is taken; in both cases
// nothing is persisted.
func (s *Service) Register(ctx context.Context, username, password, email string) (string, string, error) {
	if err := validateEmail(email); err != nil {
		return "", "", err
	}

	ownerKey := OwnerKey(email)

	address, err := s.deriver.Address(email)
	if err != nil {
		return "", "", fmt.Errorf("error deriving wallet address: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("error hashing password: %w", err)
	}

	now := timeNow().UTC().Format(time.RFC3339)
	account := &Account{
		Username:      username,
		PasswordHash:  hash,
		Email:         email,
		OwnerKey:      ownerKey,
		WalletAddress: address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", "", common.ErrorAlreadyExists
		}
		return "", "", fmt.Errorf("error creating account: %w", err)
	}

	s.logger.Info(ctx, "account registered", "username", username, "wallet_address", address)
	return ownerKey, address, nil
}

// Login verifies the password for a registered username. It returns
// common.ErrorNotFound for an unknown username and
// common.ErrorAuthentication when verification fails. Success carries no
// session or token.
func (s *Service) Login(ctx context.Context, username, password string) error {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error reading account: %w", err)
	}

	if !cryptox.VerifyPassword(password, account.PasswordHash) {
		return common.ErrorAuthentication
	}
	return nil
}

// WalletAddress derives the wallet address for an email without touching
// the store. Same email, same address, for the process's fixed seed.
func (s *Service) WalletAddress(email string) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}
	return s.deriver.Address(email)
}

// Package cli implements the interactive coinkeeper prompt. It is a thin
// wrapper over the core packages: all validation, derivation, and
// persistence decisions happen below it.
package cli

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/accounts"
	"github.com/dmitrijs2005/coinkeeper/internal/config"
	"github.com/dmitrijs2005/coinkeeper/internal/cryptox"
	"github.com/dmitrijs2005/coinkeeper/internal/hdwallet"
	"github.com/dmitrijs2005/coinkeeper/internal/keystore"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
)

// closableRepository is satisfied by the store backends, which own a
// database handle that must be released on shutdown.
type closableRepository interface {
	accounts.Repository
	Close() error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	service  *accounts.Service
	keys     *keystore.Store
	repo     closableRepository
	vault    *cryptox.Vault
	userName string
	reader   *bufio.Reader
}

// newRepository opens the configured account store backend.
func newRepository(cfg *config.Config) (closableRepository, error) {
	switch cfg.Backend {
	case "postgres":
		return accounts.NewPostgresRepository(cfg.DatabaseDSN)
	case "sqlite":
		return accounts.NewSQLiteRepository(cfg.DatabaseDSN)
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// NewApp wires the CLI: it decodes the master seed, opens the account
// store (running migrations), and opens the keystore. The seed and any
// derived vault key live only in process memory.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	seed, err := hex.DecodeString(cfg.MasterSeedHex)
	if err != nil {
		return nil, fmt.Errorf("invalid master seed: %w", err)
	}

	params, err := hdwallet.ParseNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}

	deriver, err := hdwallet.New(seed, params)
	if err != nil {
		return nil, err
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return nil, err
	}

	if err := repo.Migrate(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	keys, err := keystore.Open(cfg.KeystorePath)
	if err != nil {
		repo.Close()
		return nil, err
	}

	service := accounts.NewService(repo, deriver, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		service: service,
		keys:    keys,
		repo:    repo,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the prompt loop and releases resources when it exits.
func (a *App) Run(ctx context.Context) {
	defer a.repo.Close()
	defer a.keys.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) isVaultOpen() bool {
	return a.vault != nil
}

package accounts

import "context"

// Repository is the persistence contract for user accounts. Any engine
// providing atomic unique-key insert and lookup satisfies it.
//
// Create must fail with common.ErrorAlreadyExists when the username is
// already present, decided atomically by the engine's primary-key
// constraint rather than an in-process check.
type Repository interface {
	Migrate(ctx context.Context) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}

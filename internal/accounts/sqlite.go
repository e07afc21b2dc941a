package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/accounts/migrations/sqlitemigrations"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/dbx"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository is the file-local account store, used as the default
// backend when no PostgreSQL DSN is configured.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the SQLite database at path.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Migrate runs the embedded goose migrations, creating the users table if
// it is absent.
func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	goose.SetBaseFS(sqlitemigrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, r.db, ".")
}

// FindByUsername returns the stored account row for a username.
func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	query :=
		`SELECT username, password, email, owner_key, wallet_address, created_at, updated_at
		 FROM users
		 WHERE username = ?
		 `

	account := &Account{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.Username, &account.PasswordHash, &account.Email,
		&account.OwnerKey, &account.WalletAddress,
		&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStorage, err)
	}

	return account, nil
}

// isConstraintViolation reports whether err is a SQLite primary-key or
// unique constraint failure.
func isConstraintViolation(err error) bool {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	code := sqlErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// Create inserts exactly one account row inside its own transaction.
// A duplicate username surfaces as common.ErrorAlreadyExists, decided
// atomically by the primary-key constraint.
func (r *SQLiteRepository) Create(ctx context.Context, account *Account) error {
	query :=
		`INSERT INTO users (username, password, email, owner_key, wallet_address, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, query,
			account.Username, account.PasswordHash, account.Email,
			account.OwnerKey, account.WalletAddress,
			account.CreatedAt, account.UpdatedAt)

		if err != nil {
			if isConstraintViolation(err) {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("%w: %v", common.ErrorStorage, err)
		}
		return nil
	})
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

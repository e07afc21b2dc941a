package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/accounts/migrations/pgmigrations"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation (duplicate primary key on insert).
const pgUniqueViolation = "23505"

// PostgresRepository is the PostgreSQL-backed account store.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository opens a connection pool for the given DSN.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

// Migrate runs the embedded goose migrations, creating the users table if
// it is absent.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	goose.SetBaseFS(pgmigrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, r.db, ".")
}

// FindByUsername returns the stored account row for a username.
func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	query :=
		`SELECT username, password, email, owner_key, wallet_address, created_at, updated_at
		 FROM users
		 WHERE username = $1
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

// Create inserts exactly one account row inside its own transaction.
// A duplicate username surfaces as common.ErrorAlreadyExists, decided
// atomically by the primary-key constraint.
func (r *PostgresRepository) Create(ctx context.Context, account *Account) error {
	query :=
		`INSERT INTO users (username, password, email, owner_key, wallet_address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, query,
			account.Username, account.PasswordHash, account.Email,
			account.OwnerKey, account.WalletAddress,
			account.CreatedAt, account.UpdatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("%w: %v", common.ErrorStorage, err)
		}
		return nil
	})
}

// Close releases the underlying connection pool.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

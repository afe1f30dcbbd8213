package store

import (
	"context"
	"errors"

	"github.com/covercell/covercell/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and let a Tx-scoped
// Store hand out repositories bound to the transaction.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations such as enrollment.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id provided by the app via ULID)
	// together with its ordered image references. The email uniqueness
	// constraint is the authoritative duplicate check: a conflicting
	// insert returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login and the signup pre-check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID loads a user for authenticated profile reads.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// EmailExists is a courtesy pre-check only; CreateUser's constraint
	// conflict remains the source of truth under concurrency.
	EmailExists(ctx context.Context, email string) (bool, error)

	// IsEmpty returns true if there are no users. Used by bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}

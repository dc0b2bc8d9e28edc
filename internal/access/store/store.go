package store

import (
	"context"
	"errors"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Invites() Invites
	Accounts() Accounts
	RoleChanges() RoleChanges

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back if fn returns
	// an error, committed otherwise. This is the recommended way to run
	// multi-step operations that must be atomic (redemption, demotion).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invites interface {
	// CreateInvite inserts a new invite. A code collision returns
	// ErrAlreadyExists so the caller can regenerate and retry.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByID fetches one invite regardless of state.
	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)

	// GetInviteByCode fetches one invite by canonical code text.
	GetInviteByCode(ctx context.Context, code string) (domain.Invite, error)

	// ConsumeInvite atomically increments current_uses iff the invite is
	// active, unexpired as of now, below its use budget, and bound to
	// email. Returns ErrNotFound when no row qualifies; the caller must
	// not learn which condition failed. This conditional update is the
	// redemption race guard: concurrent callers on a one-use code get at
	// most one success.
	ConsumeInvite(ctx context.Context, code, email string, now time.Time) error

	// RevokeInvite flips is_active to false. Revoking an already-revoked
	// invite is a no-op; both report found=true. found=false means no
	// such id.
	RevokeInvite(ctx context.Context, id string) (found bool, err error)

	// ListInvites returns invites newest-first, narrowed by filter.
	// Status filtering is evaluated against now.
	ListInvites(ctx context.Context, f domain.InviteFilter, now time.Time) ([]domain.Invite, error)
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail returns an account by normalized email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via
	// ULID). A duplicate email returns ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// SetAdmin sets is_admin and bumps updated_at.
	SetAdmin(ctx context.Context, accountID string, isAdmin bool) error

	// CountAdmins returns the number of accounts with is_admin set. Call
	// inside a transaction when the count guards an invariant.
	CountAdmins(ctx context.Context) (int, error)

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

type RoleChanges interface {
	// CreateRoleChange appends one audit record.
	CreateRoleChange(ctx context.Context, rc domain.RoleChange) error

	// ListRoleChangesForTarget returns a target's audit trail newest-first.
	ListRoleChangesForTarget(ctx context.Context, targetID string, limit int) ([]domain.RoleChange, error)
}

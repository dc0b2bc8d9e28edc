package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/hearthstack/hearth/internal/access/store"
	"github.com/hearthstack/hearth/pkg/slogx"
)

var ErrForbidden = errors.New("caller lacks required privilege")

// Gate resolves a caller's current privilege by reading the account row,
// never by trusting a client-supplied claim. Every privileged operation
// consults it immediately before acting; nothing caches the answer, so a
// role change is visible on the target's very next call.
type Gate struct {
	Store store.Store
}

// Resolve returns the caller's current privilege flags.
func (g *Gate) Resolve(ctx context.Context, accountID string) (domain.Privilege, error) {
	acct, err := g.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// A verified token for a missing account: treat as no privilege
			// rather than an internal error.
			return domain.Privilege{}, ErrForbidden
		}
		return domain.Privilege{}, err
	}

	return domain.Privilege{
		IsAdmin:     acct.IsAdmin,
		IsProtected: acct.IsProtected,
	}, nil
}

// RequireAdmin resolves the caller and fails with ErrForbidden unless they
// currently hold admin. Denials are logged with the actor for audit.
func (g *Gate) RequireAdmin(ctx context.Context, accountID string) error {
	log := slogx.FromContext(ctx)

	priv, err := g.Resolve(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			log.Warn("privilege check failed: unknown account",
				slog.String("actor_id", accountID),
			)
		}
		return err
	}

	if !priv.IsAdmin {
		log.Warn("privilege check failed: admin required",
			slog.String("actor_id", accountID),
		)
		return ErrForbidden
	}

	return nil
}

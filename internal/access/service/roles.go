package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/hearthstack/hearth/internal/access/store"
	"github.com/hearthstack/hearth/pkg/idx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

var (
	// ErrAccountNotFound is returned when the target of a role change does
	// not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrProtectedAccount is returned on any attempt to demote a protected
	// account. There is no API path that clears the flag.
	ErrProtectedAccount = errors.New("account is protected and cannot be demoted")

	// ErrLastAdmin is returned when a demotion would leave the system with
	// no admins at all.
	ErrLastAdmin = errors.New("cannot demote the last remaining admin")
)

// RolesService grants and revokes admin privilege. Every change is written
// together with an audit row in one transaction; the guards against
// demoting a protected account or the last admin are evaluated inside that
// same transaction so concurrent demotions cannot slip past them.
type RolesService struct {
	Store store.Store
	Gate  *Gate
}

// Promote grants admin to the target account. Promoting an account that is
// already an admin succeeds without writing anything.
func (s *RolesService) Promote(ctx context.Context, actorID, targetID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Gate.RequireAdmin(ctx, actorID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := tx.Accounts().GetAccountByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		if target.IsAdmin {
			log.Debug("promote is a no-op, target already admin",
				slog.String("target_id", targetID),
			)
			return nil
		}

		if err := tx.Accounts().SetAdmin(ctx, targetID, true); err != nil {
			return err
		}

		return s.recordChange(ctx, tx, actorID, targetID, false, true)
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return err
		}
		return fmt.Errorf("promote account: %w", err)
	}

	log.Info("account promoted to admin",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
	)
	return nil
}

// Demote revokes admin from the target account. Protected accounts refuse
// demotion outright, and the final admin cannot be demoted by anyone,
// themselves included.
func (s *RolesService) Demote(ctx context.Context, actorID, targetID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Gate.RequireAdmin(ctx, actorID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := tx.Accounts().GetAccountByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		if target.IsProtected {
			return ErrProtectedAccount
		}

		if !target.IsAdmin {
			log.Debug("demote is a no-op, target not admin",
				slog.String("target_id", targetID),
			)
			return nil
		}

		// Counted inside the transaction, after the target is known to be
		// an admin, so two simultaneous demotions cannot both observe two
		// admins and leave zero behind.
		admins, err := tx.Accounts().CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}

		if err := tx.Accounts().SetAdmin(ctx, targetID, false); err != nil {
			return err
		}

		return s.recordChange(ctx, tx, actorID, targetID, true, false)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound),
			errors.Is(err, ErrProtectedAccount),
			errors.Is(err, ErrLastAdmin):
			return err
		}
		return fmt.Errorf("demote account: %w", err)
	}

	log.Info("account demoted from admin",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
	)
	return nil
}

// History returns the audit trail of role changes for one account, newest
// first.
func (s *RolesService) History(ctx context.Context, callerID, targetID string, limit int) ([]domain.RoleChange, error) {
	if err := s.Gate.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.Store.RoleChanges().ListRoleChangesForTarget(ctx, targetID, limit)
}

func (s *RolesService) recordChange(ctx context.Context, tx store.Store, actorID, targetID string, oldValue, newValue bool) error {
	return tx.RoleChanges().CreateRoleChange(ctx, domain.RoleChange{
		ID:        idx.New().String(),
		ActorID:   actorID,
		TargetID:  targetID,
		OldValue:  oldValue,
		NewValue:  newValue,
		CreatedAt: time.Now().UTC(),
	})
}

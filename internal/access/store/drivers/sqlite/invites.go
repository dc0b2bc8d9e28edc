package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/hearthstack/hearth/internal/access/store"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, code, intended_email, created_by, expires_at, max_uses, current_uses, is_active, created_at, updated_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invite_codes (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Code,
		inv.IntendedEmail,
		inv.CreatedBy,
		inv.ExpiresAt.UTC(),
		inv.MaxUses,
		inv.CurrentUses,
		inv.IsActive,
		inv.CreatedAt.UTC(),
		inv.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM invite_codes WHERE id = ?`, id)
	return scanInvite(row)
}

func (r *invitesRepo) GetInviteByCode(ctx context.Context, code string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM invite_codes WHERE code = ?`, code)
	return scanInvite(row)
}

// ConsumeInvite is the redemption race guard: a single conditional update
// that increments the use counter only while every redemption precondition
// still holds at write time. sqlite serializes writers, so of N concurrent
// callers on a one-use code exactly one sees a qualifying row.
func (r *invitesRepo) ConsumeInvite(ctx context.Context, code, email string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes
		SET current_uses = current_uses + 1, updated_at = ?
		WHERE code = ?
		  AND is_active = 1
		  AND expires_at > ?
		  AND current_uses < max_uses
		  AND intended_email = ?`,
		now.UTC(), code, now.UTC(), email,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Deliberately indistinguishable: unknown code, revoked, expired,
		// exhausted, and email mismatch all land here.
		return store.ErrNotFound
	}
	return nil
}

func (r *invitesRepo) RevokeInvite(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes
		SET is_active = 0, updated_at = ?
		WHERE id = ? AND is_active = 1`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	// No row updated: either already revoked (fine, idempotent) or absent.
	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM invite_codes WHERE id = ?`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (r *invitesRepo) ListInvites(
	ctx context.Context,
	f domain.InviteFilter,
	now time.Time,
) ([]domain.Invite, error) {
	var (
		conds []string
		args  []any
	)
	if f.IntendedEmail != "" {
		conds = append(conds, "intended_email = ?")
		args = append(args, f.IntendedEmail)
	}
	if f.CreatedBy != "" {
		conds = append(conds, "created_by = ?")
		args = append(args, f.CreatedBy)
	}

	query := `SELECT ` + inviteColumns + ` FROM invite_codes`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		// Derived status is computed, not stored, so it filters here.
		if f.Status != "" && inv.Status(now) != f.Status {
			continue
		}
		out = append(out, inv)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvite(s scanner) (domain.Invite, error) {
	var inv domain.Invite
	err := s.Scan(
		&inv.ID,
		&inv.Code,
		&inv.IntendedEmail,
		&inv.CreatedBy,
		&inv.ExpiresAt,
		&inv.MaxUses,
		&inv.CurrentUses,
		&inv.IsActive,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

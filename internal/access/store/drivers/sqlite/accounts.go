package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, email, display_name, password_hash, is_admin, is_protected, created_at, updated_at`

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Email,
		a.DisplayName,
		a.PasswordHash,
		a.IsAdmin,
		a.IsProtected,
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) SetAdmin(ctx context.Context, accountID string, isAdmin bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET is_admin = ?, updated_at = ? WHERE id = ?`,
		isAdmin, time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *accountsRepo) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM accounts WHERE is_admin = 1`).Scan(&n)
	return n, err
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func scanAccount(s scanner) (domain.Account, error) {
	var a domain.Account
	err := s.Scan(
		&a.ID,
		&a.Email,
		&a.DisplayName,
		&a.PasswordHash,
		&a.IsAdmin,
		&a.IsProtected,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

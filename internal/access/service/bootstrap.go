package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/hearthstack/hearth/internal/access/store"
	"github.com/hearthstack/hearth/pkg/cryptox"
	"github.com/hearthstack/hearth/pkg/emailx"
	"github.com/hearthstack/hearth/pkg/idx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

var (
	// ErrAlreadyBootstrapped is returned once any account exists; the
	// bootstrap endpoint works exactly once per deployment.
	ErrAlreadyBootstrapped = errors.New("system already bootstrapped")

	// ErrBadBootstrapToken is returned when the pre-shared token does not
	// match.
	ErrBadBootstrapToken = errors.New("invalid bootstrap token")

	// ErrInvalidPassword is returned when the supplied password is empty.
	ErrInvalidPassword = errors.New("invalid password")
)

// BootstrapService creates the first account: a protected super-admin that
// no later role change can demote. It is guarded by a pre-shared token from
// deployment config rather than a session, because no accounts exist yet to
// authenticate against.
type BootstrapService struct {
	Store store.Store

	// Token is the pre-shared secret. Empty disables bootstrap entirely.
	Token string
}

// BootstrapParams describe the super-admin to create.
type BootstrapParams struct {
	Token       string
	Email       string
	DisplayName string
	Password    string
}

// IsBootstrapped reports whether any account exists yet.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap provisions the protected super-admin and returns its account.
func (s *BootstrapService) Bootstrap(ctx context.Context, p BootstrapParams) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if s.Token == "" || !cryptox.SecureCompare(p.Token, s.Token) {
		log.Warn("bootstrap rejected: bad token")
		return domain.Account{}, ErrBadBootstrapToken
	}

	email, err := emailx.Validate(p.Email)
	if err != nil {
		return domain.Account{}, ErrInvalidEmail
	}
	if p.Password == "" {
		return domain.Account{}, ErrInvalidPassword
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  p.DisplayName,
		PasswordHash: hash,
		IsAdmin:      true,
		IsProtected:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if acct.DisplayName == "" {
		acct.DisplayName = acct.Email
	}

	// The emptiness check runs inside the same transaction as the insert so
	// two racing bootstrap calls cannot both succeed.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Accounts().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrAlreadyBootstrapped
		}
		return tx.Accounts().CreateAccount(ctx, acct)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyBootstrapped) {
			return domain.Account{}, err
		}
		return domain.Account{}, fmt.Errorf("bootstrap: %w", err)
	}

	log.Info("system bootstrapped",
		slog.String("account_id", acct.ID),
		slog.String("email", acct.Email),
	)
	return acct, nil
}

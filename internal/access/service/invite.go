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
	// ErrInvalidEmail is returned to admins when the intended email does not
	// parse as an address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidInviteParams is returned to admins for an out-of-range use
	// count or lifetime.
	ErrInvalidInviteParams = errors.New("invalid invite parameters")

	// ErrInviteInvalid is the only failure ever surfaced on the redemption
	// path. Expired, revoked, exhausted, unknown and email-mismatched codes
	// all collapse into it so that the endpoint cannot be used to probe
	// which codes exist or whom they were issued to. The real cause is
	// logged server side.
	ErrInviteInvalid = errors.New("invite code is invalid")

	// ErrInviteNotFound is returned to admins revoking a code that does not
	// exist. Unlike redemption, management endpoints are already gated, so
	// a specific error is fine.
	ErrInviteNotFound = errors.New("invite code not found")
)

const (
	DefaultInviteTTL = 30 * 24 * time.Hour
	MaxInviteTTL     = 90 * 24 * time.Hour

	// codeGenAttempts bounds retries on the astronomically unlikely event
	// of a generated code colliding with an existing row.
	codeGenAttempts = 3
)

// InviteService issues, redeems, revokes and lists invite codes. Issuance
// and management require admin privilege via the Gate; redemption is
// unauthenticated and is the only write an anonymous caller can reach.
type InviteService struct {
	Store store.Store
	Gate  *Gate

	// DefaultTTL and MaxTTL override the package defaults when non-zero.
	DefaultTTL time.Duration
	MaxTTL     time.Duration
}

// IssueParams are the admin-supplied knobs for a new invite. Zero values
// select the defaults (single use, DefaultTTL lifetime).
type IssueParams struct {
	IntendedEmail string
	MaxUses       int
	TTL           time.Duration
}

// Issue creates a single invite code bound to one email address.
func (s *InviteService) Issue(ctx context.Context, callerID string, p IssueParams) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Caller must currently be an admin.
	if err := s.Gate.RequireAdmin(ctx, callerID); err != nil {
		return domain.Invite{}, err
	}

	// 2. Validate and normalize the bound email.
	email, err := emailx.Validate(p.IntendedEmail)
	if err != nil {
		return domain.Invite{}, ErrInvalidEmail
	}

	// 3. Apply defaults and bounds to uses and lifetime.
	maxUses := p.MaxUses
	if maxUses == 0 {
		maxUses = 1
	}
	if maxUses < 1 {
		return domain.Invite{}, ErrInvalidInviteParams
	}

	ttl := p.TTL
	if ttl == 0 {
		ttl = s.defaultTTL()
	}
	if ttl < 0 {
		return domain.Invite{}, ErrInvalidInviteParams
	}
	if max := s.maxTTL(); ttl > max {
		ttl = max
	}

	now := time.Now().UTC()
	inv := domain.Invite{
		IntendedEmail: email,
		CreatedBy:     callerID,
		ExpiresAt:     now.Add(ttl),
		MaxUses:       maxUses,
		CurrentUses:   0,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 4. Generate a code and insert, retrying on the off chance the random
	// code already exists.
	for attempt := 0; attempt < codeGenAttempts; attempt++ {
		code, err := cryptox.GenerateCode()
		if err != nil {
			return domain.Invite{}, fmt.Errorf("generate invite code: %w", err)
		}

		inv.ID = idx.New().String()
		inv.Code = code

		err = s.Store.Invites().CreateInvite(ctx, inv)
		if err == nil {
			log.Info("invite issued",
				slog.String("invite_id", inv.ID),
				slog.String("intended_email", inv.IntendedEmail),
				slog.String("created_by", callerID),
				slog.Int("max_uses", inv.MaxUses),
				slog.Time("expires_at", inv.ExpiresAt),
			)
			return inv, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invite{}, fmt.Errorf("create invite: %w", err)
		}
	}

	return domain.Invite{}, fmt.Errorf("create invite: exhausted %d code attempts", codeGenAttempts)
}

// RedeemParams carry the anonymous signup form.
type RedeemParams struct {
	Code        string
	Email       string
	Password    string
	DisplayName string
}

// Redeem atomically consumes one use of an invite and provisions the new
// account in the same transaction. If provisioning fails the consumed use
// is rolled back with it, so a failed signup never burns the code.
//
// All failures surface as ErrInviteInvalid; see its doc comment.
func (s *InviteService) Redeem(ctx context.Context, p RedeemParams) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Canonicalize the code and normalize the email before touching
	// storage. Malformed input cannot match anything, so it gets the same
	// generic answer as an unknown code.
	code, err := cryptox.CanonicalCode(p.Code)
	if err != nil {
		log.Info("redeem rejected: malformed code")
		return domain.Account{}, ErrInviteInvalid
	}

	email, err := emailx.Validate(p.Email)
	if err != nil {
		log.Info("redeem rejected: malformed email")
		return domain.Account{}, ErrInviteInvalid
	}

	if p.Password == "" {
		log.Info("redeem rejected: empty password")
		return domain.Account{}, ErrInviteInvalid
	}

	// 2. Hash outside the transaction; argon2 is deliberately slow and has
	// no business holding the write lock.
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	var acct domain.Account

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 3. Conditionally consume one use. The single UPDATE checks
		// active, unexpired, under the use cap and bound to this email; if
		// any condition fails nothing is consumed and we cannot tell which
		// condition it was, which is exactly the property we want.
		if err := tx.Invites().ConsumeInvite(ctx, code, email, now); err != nil {
			return err
		}

		// 4. Provision the account against the invite's bound email, not
		// the submitted form value.
		inv, err := tx.Invites().GetInviteByCode(ctx, code)
		if err != nil {
			return err
		}

		acct = domain.Account{
			ID:           idx.New().String(),
			Email:        inv.IntendedEmail,
			DisplayName:  p.DisplayName,
			PasswordHash: hash,
			IsAdmin:      false,
			IsProtected:  false,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if acct.DisplayName == "" {
			acct.DisplayName = acct.Email
		}

		return tx.Accounts().CreateAccount(ctx, acct)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Info("redeem rejected: no consumable invite",
				slog.String("email", email),
			)
		case errors.Is(err, store.ErrAlreadyExists):
			log.Warn("redeem rejected: account already exists",
				slog.String("email", email),
			)
		default:
			log.Error("redeem failed", slog.Any("error", err))
		}
		return domain.Account{}, ErrInviteInvalid
	}

	log.Info("invite redeemed",
		slog.String("account_id", acct.ID),
		slog.String("email", acct.Email),
	)
	return acct, nil
}

// Revoke deactivates an invite by id. Revoking an already revoked code is a
// no-op success; revoking an unknown id is ErrInviteNotFound.
func (s *InviteService) Revoke(ctx context.Context, callerID, inviteID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Gate.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	found, err := s.Store.Invites().RevokeInvite(ctx, inviteID)
	if err != nil {
		return fmt.Errorf("revoke invite: %w", err)
	}
	if !found {
		return ErrInviteNotFound
	}

	log.Info("invite revoked",
		slog.String("invite_id", inviteID),
		slog.String("revoked_by", callerID),
	)
	return nil
}

// List returns invites matching the filter, newest first. Status is derived
// at read time, so a code that expired five minutes ago already lists as
// expired without any background sweep.
func (s *InviteService) List(ctx context.Context, callerID string, f domain.InviteFilter) ([]domain.Invite, error) {
	if err := s.Gate.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	if f.IntendedEmail != "" {
		f.IntendedEmail = emailx.Normalize(f.IntendedEmail)
	}

	return s.Store.Invites().ListInvites(ctx, f, time.Now().UTC())
}

func (s *InviteService) defaultTTL() time.Duration {
	if s.DefaultTTL > 0 {
		return s.DefaultTTL
	}
	return DefaultInviteTTL
}

func (s *InviteService) maxTTL() time.Duration {
	if s.MaxTTL > 0 {
		return s.MaxTTL
	}
	return MaxInviteTTL
}

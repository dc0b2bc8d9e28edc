package service

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{4}(-[0-9A-HJKMNP-TV-Z]{4}){3}$`)

func TestIssueInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInviteService(st)

	admin := seedAccount(t, st, "admin@example.com", true, false)
	member := seedAccount(t, st, "member@example.com", false, false)

	t.Run("admin issues with defaults", func(t *testing.T) {
		inv, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "New.Person@Example.COM"})
		require.NoError(t, err)

		require.Regexp(t, codePattern, inv.Code)
		require.Equal(t, "new.person@example.com", inv.IntendedEmail)
		require.Equal(t, 1, inv.MaxUses)
		require.Equal(t, admin.ID, inv.CreatedBy)
		require.WithinDuration(t, time.Now().Add(DefaultInviteTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		_, err := svc.Issue(ctx, member.ID, IssueParams{IntendedEmail: "x@example.com"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("bad email is refused", func(t *testing.T) {
		_, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "not-an-email"})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("negative uses refused", func(t *testing.T) {
		_, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "x@example.com", MaxUses: -1})
		require.ErrorIs(t, err, ErrInvalidInviteParams)
	})

	t.Run("lifetime is capped", func(t *testing.T) {
		inv, err := svc.Issue(ctx, admin.ID, IssueParams{
			IntendedEmail: "capped@example.com",
			TTL:           365 * 24 * time.Hour,
		})
		require.NoError(t, err)
		require.WithinDuration(t, time.Now().Add(MaxInviteTTL), inv.ExpiresAt, time.Minute)
	})
}

func TestRedeemInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInviteService(st)

	admin := seedAccount(t, st, "admin@example.com", true, false)

	issue := func(t *testing.T, email string, p IssueParams) domain.Invite {
		t.Helper()
		p.IntendedEmail = email
		inv, err := svc.Issue(ctx, admin.ID, p)
		require.NoError(t, err)
		return inv
	}

	t.Run("happy path provisions the account", func(t *testing.T) {
		inv := issue(t, "alice@example.com", IssueParams{})

		acct, err := svc.Redeem(ctx, RedeemParams{
			Code:        inv.Code,
			Email:       "Alice@Example.com",
			Password:    "correct horse battery staple",
			DisplayName: "Alice",
		})
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", acct.Email)
		require.False(t, acct.IsAdmin)
		require.False(t, acct.IsProtected)

		stored, err := st.Accounts().GetAccountByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, acct.ID, stored.ID)

		used, err := st.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, 1, used.CurrentUses)
	})

	t.Run("sloppy code formatting is accepted", func(t *testing.T) {
		inv := issue(t, "bob@example.com", IssueParams{})

		sloppy := "  " + inv.Code[0:4] + inv.Code[5:9] + " " + inv.Code[10:14] + "-" + inv.Code[15:19] + " "
		_, err := svc.Redeem(ctx, RedeemParams{
			Code:     sloppy,
			Email:    "bob@example.com",
			Password: "pw-bob-123456",
		})
		require.NoError(t, err)
	})

	t.Run("wrong email gets the generic error", func(t *testing.T) {
		inv := issue(t, "carol@example.com", IssueParams{})

		_, err := svc.Redeem(ctx, RedeemParams{
			Code:     inv.Code,
			Email:    "mallory@example.com",
			Password: "pw-123456789",
		})
		require.ErrorIs(t, err, ErrInviteInvalid)

		// The failed attempt must not burn a use.
		fresh, err := st.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, 0, fresh.CurrentUses)
	})

	t.Run("unknown code gets the generic error", func(t *testing.T) {
		_, err := svc.Redeem(ctx, RedeemParams{
			Code:     "AAAA-BBBB-CCCC-DDDD",
			Email:    "x@example.com",
			Password: "pw-123456789",
		})
		require.ErrorIs(t, err, ErrInviteInvalid)
	})

	t.Run("revoked code gets the generic error", func(t *testing.T) {
		inv := issue(t, "dave@example.com", IssueParams{})
		require.NoError(t, svc.Revoke(ctx, admin.ID, inv.ID))

		_, err := svc.Redeem(ctx, RedeemParams{
			Code:     inv.Code,
			Email:    "dave@example.com",
			Password: "pw-123456789",
		})
		require.ErrorIs(t, err, ErrInviteInvalid)
	})

	t.Run("expired code gets the generic error", func(t *testing.T) {
		inv := issue(t, "erin@example.com", IssueParams{TTL: time.Nanosecond})
		time.Sleep(10 * time.Millisecond)

		_, err := svc.Redeem(ctx, RedeemParams{
			Code:     inv.Code,
			Email:    "erin@example.com",
			Password: "pw-123456789",
		})
		require.ErrorIs(t, err, ErrInviteInvalid)
	})

	t.Run("single-use code refuses a second redemption", func(t *testing.T) {
		inv := issue(t, "frank@example.com", IssueParams{})

		_, err := svc.Redeem(ctx, RedeemParams{
			Code: inv.Code, Email: "frank@example.com", Password: "pw-123456789",
		})
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, RedeemParams{
			Code: inv.Code, Email: "frank@example.com", Password: "pw-123456789",
		})
		require.ErrorIs(t, err, ErrInviteInvalid)
	})

	t.Run("failed provisioning rolls back the consumed use", func(t *testing.T) {
		// An account with the bound email already exists, so provisioning
		// fails after the use was consumed inside the transaction.
		seedAccount(t, st, "taken@example.com", false, false)
		inv := issue(t, "taken@example.com", IssueParams{})

		_, err := svc.Redeem(ctx, RedeemParams{
			Code: inv.Code, Email: "taken@example.com", Password: "pw-123456789",
		})
		require.ErrorIs(t, err, ErrInviteInvalid)

		fresh, err := st.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, 0, fresh.CurrentUses)
	})
}

// TestRedeemInviteConcurrent races many redemptions of a single-use code and
// checks exactly one account comes out the other side.
func TestRedeemInviteConcurrent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInviteService(st)

	admin := seedAccount(t, st, "admin@example.com", true, false)

	inv, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "contested@example.com"})
	require.NoError(t, err)

	const racers = 16

	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Redeem(ctx, RedeemParams{
				Code:     inv.Code,
				Email:    "contested@example.com",
				Password: "pw-123456789",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, ErrInviteInvalid)
		losses++
	}

	require.Equal(t, 1, wins)
	require.Equal(t, racers-1, losses)

	final, err := st.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, 1, final.CurrentUses)
}

func TestRevokeInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInviteService(st)

	admin := seedAccount(t, st, "admin@example.com", true, false)
	member := seedAccount(t, st, "member@example.com", false, false)

	inv, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "gone@example.com"})
	require.NoError(t, err)

	t.Run("non-admin is refused", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(ctx, member.ID, inv.ID), ErrForbidden)
	})

	t.Run("revocation is idempotent", func(t *testing.T) {
		require.NoError(t, svc.Revoke(ctx, admin.ID, inv.ID))
		require.NoError(t, svc.Revoke(ctx, admin.ID, inv.ID))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(ctx, admin.ID, "01XXXXXXXXXXXXXXXXXXXXXXXX"), ErrInviteNotFound)
	})
}

func TestListInvites(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInviteService(st)

	admin := seedAccount(t, st, "admin@example.com", true, false)

	active, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "a@example.com"})
	require.NoError(t, err)

	revoked, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "b@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, admin.ID, revoked.ID))

	expired, err := svc.Issue(ctx, admin.ID, IssueParams{IntendedEmail: "c@example.com", TTL: time.Nanosecond})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	t.Run("all invites without filter", func(t *testing.T) {
		got, err := svc.List(ctx, admin.ID, domain.InviteFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("status is derived at read time", func(t *testing.T) {
		got, err := svc.List(ctx, admin.ID, domain.InviteFilter{Status: domain.InviteExpired})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, expired.ID, got[0].ID)

		got, err = svc.List(ctx, admin.ID, domain.InviteFilter{Status: domain.InviteRevoked})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, revoked.ID, got[0].ID)
	})

	t.Run("filter by email", func(t *testing.T) {
		got, err := svc.List(ctx, admin.ID, domain.InviteFilter{IntendedEmail: "A@Example.com"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, active.ID, got[0].ID)
	})
}

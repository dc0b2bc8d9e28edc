package access_test

import (
	"strings"
	"testing"

	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/stretchr/testify/require"
)

func TestInviteLifecycle(t *testing.T) {
	baseURL, identity, cleanup := setupAccessContainer(t)
	defer cleanup()

	admin, _ := bootstrapAdmin(t, baseURL, identity)
	anon := accesssdk.NewClient(baseURL)

	t.Run("issuing requires authentication", func(t *testing.T) {
		_, err := anon.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "x@example.com",
		})
		require.Error(t, err)
	})

	t.Run("full signup flow", func(t *testing.T) {
		inv, err := admin.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "alice@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, "active", inv.Status)
		require.Equal(t, 1, inv.MaxUses)

		// Sloppy formatting on the wire, lowercased without dashes.
		sloppy := strings.ToLower(strings.ReplaceAll(inv.Code, "-", ""))
		acct, err := anon.RedeemInvite(t.Context(), accesssdk.RedeemInviteRequest{
			Code:        sloppy,
			Email:       "alice@example.com",
			Password:    "Alice123!",
			DisplayName: "Alice",
		})
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", acct.Email)
		require.False(t, acct.IsAdmin)

		// The new member can authenticate and see their role.
		member := anon.WithToken(identity.token(t, acct.ID, acct.Email))
		role, err := member.Me(t.Context())
		require.NoError(t, err)
		require.False(t, role.IsAdmin)

		// The code is spent.
		_, err = anon.RedeemInvite(t.Context(), accesssdk.RedeemInviteRequest{
			Code:     inv.Code,
			Email:    "alice@example.com",
			Password: "Alice123!",
		})
		require.True(t, accesssdk.IsCode(err, "invalid_invite"))
	})

	t.Run("mismatched email gets the generic error", func(t *testing.T) {
		inv, err := admin.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "bob@example.com",
		})
		require.NoError(t, err)

		_, err = anon.RedeemInvite(t.Context(), accesssdk.RedeemInviteRequest{
			Code:     inv.Code,
			Email:    "mallory@example.com",
			Password: "Mallory1!",
		})
		require.True(t, accesssdk.IsCode(err, "invalid_invite"))
	})

	t.Run("revoked code cannot be redeemed", func(t *testing.T) {
		inv, err := admin.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "carol@example.com",
		})
		require.NoError(t, err)

		require.NoError(t, admin.RevokeInvite(t.Context(), inv.ID))

		_, err = anon.RedeemInvite(t.Context(), accesssdk.RedeemInviteRequest{
			Code:     inv.Code,
			Email:    "carol@example.com",
			Password: "Carol123!",
		})
		require.True(t, accesssdk.IsCode(err, "invalid_invite"))
	})

	t.Run("listing reflects derived status", func(t *testing.T) {
		list, err := admin.ListInvites(t.Context(), "revoked", "")
		require.NoError(t, err)
		require.Len(t, list.Invites, 1)
		require.Equal(t, "carol@example.com", list.Invites[0].IntendedEmail)

		list, err = admin.ListInvites(t.Context(), "used_up", "")
		require.NoError(t, err)
		require.Len(t, list.Invites, 1)
		require.Equal(t, "alice@example.com", list.Invites[0].IntendedEmail)
	})
}

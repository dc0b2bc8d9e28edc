package access_test

import (
	"testing"

	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/stretchr/testify/require"
)

func TestRoleManagement(t *testing.T) {
	baseURL, identity, cleanup := setupAccessContainer(t)
	defer cleanup()

	admin, rootAcct := bootstrapAdmin(t, baseURL, identity)
	anon := accesssdk.NewClient(baseURL)

	// Provision a member through the signup flow.
	inv, err := admin.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
		IntendedEmail: "member@example.com",
	})
	require.NoError(t, err)

	memberAcct, err := anon.RedeemInvite(t.Context(), accesssdk.RedeemInviteRequest{
		Code:     inv.Code,
		Email:    "member@example.com",
		Password: "Member123!",
	})
	require.NoError(t, err)

	member := anon.WithToken(identity.token(t, memberAcct.ID, memberAcct.Email))

	t.Run("member cannot issue invites", func(t *testing.T) {
		_, err := member.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "nope@example.com",
		})
		require.True(t, accesssdk.IsCode(err, "forbidden"))
	})

	t.Run("promotion takes effect on the next request", func(t *testing.T) {
		require.NoError(t, admin.Promote(t.Context(), memberAcct.ID))

		role, err := member.Me(t.Context())
		require.NoError(t, err)
		require.True(t, role.IsAdmin)

		// The promoted member can now perform admin operations with the
		// same token they already held.
		_, err = member.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "invited-by-member@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("audit trail records both directions", func(t *testing.T) {
		require.NoError(t, admin.Demote(t.Context(), memberAcct.ID))

		history, err := admin.RoleHistory(t.Context(), memberAcct.ID)
		require.NoError(t, err)
		require.Len(t, history.Changes, 2)

		// Newest first: the demotion, then the promotion.
		require.False(t, history.Changes[0].NewValue)
		require.True(t, history.Changes[1].NewValue)
		require.Equal(t, rootAcct.ID, history.Changes[0].ActorID)
	})

	t.Run("demoted member is locked out immediately", func(t *testing.T) {
		_, err := member.IssueInvite(t.Context(), accesssdk.IssueInviteRequest{
			IntendedEmail: "late@example.com",
		})
		require.True(t, accesssdk.IsCode(err, "forbidden"))
	})

	t.Run("protected super-admin cannot be demoted", func(t *testing.T) {
		err := admin.Demote(t.Context(), rootAcct.ID)
		require.True(t, accesssdk.IsCode(err, "protected_account"))
	})

	t.Run("unknown target is not found", func(t *testing.T) {
		err := admin.Promote(t.Context(), "01XXXXXXXXXXXXXXXXXXXXXXXX")
		require.True(t, accesssdk.IsCode(err, "not_found"))
	})
}

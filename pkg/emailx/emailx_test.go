package emailx_test

import (
	"testing"

	"github.com/hearthstack/hearth/pkg/emailx"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts and normalizes valid addresses", func(t *testing.T) {
		got, err := emailx.Validate("  Alice@Example.COM ")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"   ",
			"not-an-email",
			"@example.com",
			"alice@",
			"Alice Smith <alice@example.com>",
			"a b@example.com",
		} {
			_, err := emailx.Validate(input)
			require.ErrorIs(t, err, emailx.ErrInvalid, "input %q", input)
		}
	})
}

func TestEqualIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	require.True(t, emailx.Equal("Alice@Example.com", "alice@example.COM "))
	require.False(t, emailx.Equal("alice@example.com", "bob@example.com"))
}

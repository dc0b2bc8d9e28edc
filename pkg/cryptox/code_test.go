package cryptox_test

import (
	"strings"
	"testing"

	"github.com/hearthstack/hearth/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeShape(t *testing.T) {
	t.Parallel()

	code, err := cryptox.GenerateCode()
	require.NoError(t, err)

	parts := strings.Split(code, "-")
	require.Len(t, parts, 4)
	for _, p := range parts {
		require.Len(t, p, 4)
	}
	require.Equal(t, strings.ToUpper(code), code)

	// Generated codes are already canonical.
	canonical, err := cryptox.CanonicalCode(code)
	require.NoError(t, err)
	require.Equal(t, code, canonical)
}

func TestGenerateCodeIsRandom(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		code, err := cryptox.GenerateCode()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestCanonicalCodeAcceptsSloppyInput(t *testing.T) {
	t.Parallel()

	want := "K3QT-8WM2-9XNR-04VH"

	for _, input := range []string{
		"K3QT-8WM2-9XNR-04VH",
		"k3qt-8wm2-9xnr-04vh",
		"k3qt8wm29xnr04vh",
		"  K3QT 8WM2 9XNR 04VH  ",
		"k3qt-8wm2-9xnr-o4vh", // O folds to 0
	} {
		got, err := cryptox.CanonicalCode(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestCanonicalCodeFoldsAliases(t *testing.T) {
	t.Parallel()

	got, err := cryptox.CanonicalCode("ILO0-8WM2-9XNR-04VH")
	require.NoError(t, err)
	require.Equal(t, "1100-8WM2-9XNR-04VH", got)
}

func TestCanonicalCodeRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"K3QT",                     // too short
		"K3QT-8WM2-9XNR-04VH-AAAA", // too long
		"K3QT-8WM2-9XNR-04V!",      // bad character
		"UUUU-8WM2-9XNR-04VH",      // U is not in the alphabet
	} {
		_, err := cryptox.CanonicalCode(input)
		require.ErrorIs(t, err, cryptox.ErrBadCode, "input %q", input)
	}
}

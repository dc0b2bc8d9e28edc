package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGeneratePepper_UnsetPath(t *testing.T) {
	savedPepper, savedFile := pepper, pepperFile
	t.Cleanup(func() {
		pepper, pepperFile = savedPepper, savedFile
	})

	pepper, pepperFile = "", ""
	_, err := loadOrGeneratePepper()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not configured")
}

func TestLoadOrGeneratePepper_Persists(t *testing.T) {
	savedPepper, savedFile := pepper, pepperFile
	t.Cleanup(func() {
		pepper, pepperFile = savedPepper, savedFile
	})

	path := filepath.Join(t.TempDir(), "pepper")
	pepper, pepperFile = "", path

	generated, err := loadOrGeneratePepper()
	require.NoError(t, err)
	require.NotEmpty(t, generated)

	// The file should now exist and reload to the same value
	_, err = os.Stat(path)
	require.NoError(t, err)

	reloaded, err := loadOrGeneratePepper()
	require.NoError(t, err)
	require.Equal(t, generated, reloaded)
}

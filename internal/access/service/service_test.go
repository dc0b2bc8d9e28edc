package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/hearthstack/hearth/internal/access/store"
	"github.com/hearthstack/hearth/internal/access/store/drivers/sqlite"
	"github.com/hearthstack/hearth/pkg/cryptox"
	"github.com/hearthstack/hearth/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Password hashing needs a pepper file before any account is provisioned
	pepperPath := filepath.Join(os.TempDir(), "access-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore opens a file-backed sqlite store in a temp dir. A file, not
// :memory:, because the database/sql pool would otherwise hand each
// connection its own empty in-memory database.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite",
		filepath.Join(t.TempDir(), "access.db"),
	)

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedAccount(t *testing.T, st store.Store, email string, isAdmin, isProtected bool) domain.Account {
	t.Helper()

	now := time.Now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  email,
		PasswordHash: "argon2:dummy",
		IsAdmin:      isAdmin,
		IsProtected:  isProtected,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Accounts().CreateAccount(context.Background(), acct))
	return acct
}

func newInviteService(st store.Store) *InviteService {
	return &InviteService{Store: st, Gate: &Gate{Store: st}}
}

func newRolesService(st store.Store) *RolesService {
	return &RolesService{Store: st, Gate: &Gate{Store: st}}
}

package access_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupContainerWithDefaultRateLimits starts the service WITHOUT the relaxed
// rate limit overrides, specifically to verify the limits actually bite.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	_, pubKey := newTestIdentity(t)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":           bootstrapToken,
			"ACCESS_DATABASE_FILE":      "/access.db",
			"ACCESS_PEPPER_FILE":        "/pepper",
			"ACCESS_ISSUER":             testIssuer,
			"ACCESS_SESSION_PUBLIC_KEY": pubKey,
			"ENV":                       "test",
			"LOG_LEVEL":                 "info",
			"LOG_FORMAT":                "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

func TestRedeemEndpointIsRateLimited(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	anon := accesssdk.NewClient(baseURL)

	// Hammer the redemption endpoint with garbage codes from one IP and
	// email. Under the strict default limit a 429 must show up well before
	// 30 attempts.
	limited := false
	for i := 0; i < 30; i++ {
		_, err := anon.RedeemInvite(t.Context(), accesssdk.RedeemInviteRequest{
			Code:     "AAAA-BBBB-CCCC-DDDD",
			Email:    "guess@example.com",
			Password: "Guess123!",
		})
		require.Error(t, err)

		if apiErr, ok := err.(*accesssdk.APIError); ok && apiErr.StatusCode == 429 {
			limited = true
			break
		}
	}

	require.True(t, limited, "expected the strict rate limit to trigger")
}

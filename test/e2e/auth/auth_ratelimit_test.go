package auth_test

import (
	"errors"
	"testing"

	"github.com/covercell/covercell/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that the login endpoint is rate
// limited. It carries the strict profile (5 req/min) to slow credential
// stuffing, so the 6th rapid attempt from one IP should get a 429.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	var lastErr error
	for i := range 6 {
		_, _, err := client.Login(t.Context(), seedAdminEmail, "wrongpass")
		if i < 5 {
			// First 5 should fail with a credential error, not a rate limit.
			var apiErr *portalsdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.NotEqual(t, 429, apiErr.StatusCode, "should not be rate limited yet (request %d)", i+1)
		} else {
			lastErr = err
		}
	}

	var apiErr *portalsdk.APIError
	require.True(t, errors.As(lastErr, &apiErr))
	require.Equal(t, 429, apiErr.StatusCode, "should be rate limited after 5 requests")
	t.Logf("Successfully rate limited after 5 requests to /api/auth/login")
}

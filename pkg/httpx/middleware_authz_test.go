package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, h *jwtx.HS256, role string, issuedAt time.Time) string {
	t.Helper()
	raw, err := h.Sign(jwtx.NewSessionClaims("01J0USER", "a@b.com", role, "covercell-auth", issuedAt))
	require.NoError(t, err)
	return raw
}

func TestAuthnThenRoleGate(t *testing.T) {
	h, err := jwtx.NewHS256("secret-for-tests", "covercell-auth")
	require.NoError(t, err)

	protected := Chain(okHandler(),
		AuthnMiddleware(h),
		RequireAnyRole("admin", "shop_owner", "employee"),
	)

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("customer role is denied the staff view", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, h, "customer", time.Now().UTC()))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("exact membership admits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, h, "employee", time.Now().UTC()))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("expired token is 401 not 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, h, "admin", time.Now().UTC().Add(-2*time.Hour)))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")
	})
}

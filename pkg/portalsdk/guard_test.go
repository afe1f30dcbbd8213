package portalsdk

import (
	"testing"
	"time"

	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithRole(t *testing.T, role string, issuedAt time.Time) *Session {
	t.Helper()

	signer, err := jwtx.NewHS256("guard-test-secret", "covercell-test")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewSessionClaims("user-1", "u@example.com", role, "covercell-test", issuedAt))
	require.NoError(t, err)

	s, err := newSession(nil, token)
	require.NoError(t, err)
	return s
}

func TestGuardNoSession(t *testing.T) {
	assert.Equal(t, RedirectToLogin, Guard(nil, "admin"))
}

func TestGuardExpiredSession(t *testing.T) {
	s := sessionWithRole(t, "admin", time.Now().Add(-2*time.Hour))
	assert.True(t, s.Expired())
	assert.Equal(t, RedirectToLogin, Guard(s, "admin"))
}

func TestGuardRoleMembership(t *testing.T) {
	customer := sessionWithRole(t, "customer", time.Now())
	employee := sessionWithRole(t, "employee", time.Now())

	// Staff dashboard admits employees and owners, not customers.
	assert.Equal(t, RedirectToDefault, Guard(customer, "employee", "shop_owner"))
	assert.Equal(t, Allow, Guard(employee, "employee", "shop_owner"))

	// A view with no role list only requires authentication.
	assert.Equal(t, Allow, Guard(customer))
}

func TestSessionClaimsFromToken(t *testing.T) {
	s := sessionWithRole(t, "shop_owner", time.Now())

	assert.Equal(t, "user-1", s.UserID())
	assert.Equal(t, "u@example.com", s.Email())
	assert.Equal(t, "shop_owner", s.Role())
	assert.WithinDuration(t, time.Now().Add(jwtx.SessionTTL), s.ExpiresAt(), time.Minute)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(t.TempDir() + "/session")
	client := NewSDKClient("http://localhost:0")

	_, err := store.Load(client)
	assert.ErrorIs(t, err, ErrNoStoredSession)

	s := sessionWithRole(t, "customer", time.Now())
	require.NoError(t, store.Save(s))

	loaded, err := store.Load(client)
	require.NoError(t, err)
	assert.Equal(t, s.Token(), loaded.Token())
	assert.Equal(t, "customer", loaded.Role())

	require.NoError(t, store.Clear())
	_, err = store.Load(client)
	assert.ErrorIs(t, err, ErrNoStoredSession)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

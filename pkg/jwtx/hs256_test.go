package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-0123456789"
	testIssuer = "covercell-auth"
)

func TestNewHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256("", testIssuer)
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := NewSessionClaims("01J0USER", "a@b.com", "customer", testIssuer, now)

	raw, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01J0USER", got.Subject)
	require.Equal(t, "a@b.com", got.Email)
	require.Equal(t, "customer", got.Role)
	require.WithinDuration(t, now.Add(SessionTTL), got.ExpiresAt.Time, time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	// Issued two hours ago, so the one-hour expiry has passed.
	claims := NewSessionClaims("01J0USER", "a@b.com", "customer", testIssuer,
		time.Now().UTC().Add(-2*time.Hour))

	raw, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)
	other, err := NewHS256("a-different-secret", testIssuer)
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("01J0USER", "a@b.com", "customer", testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	// alg=none must never pass, whatever the payload says.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone,
		NewSessionClaims("01J0USER", "a@b.com", "admin", testIssuer, time.Now().UTC()))
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.Error(t, err)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("01J0USER", "a@b.com", "customer", "someone-else", time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	_, err = h.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrMalformed)
}

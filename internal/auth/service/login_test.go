package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	st := newTestStore(t)
	signer := newTestSigner(t)
	ctx := context.Background()

	reg := &RegisterService{Store: st, Blobs: newTestBlobs(t), Signer: signer, Issuer: testIssuer}
	user, _, err := reg.Register(ctx, testRegistration("grace@example.com"))
	require.NoError(t, err)

	svc := &LoginService{Store: st, Signer: signer, Issuer: testIssuer}

	token, err := svc.Login(ctx, "grace@example.com", "correct horse battery")
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, "customer", claims.Role)
}

func TestLoginMissingFields(t *testing.T) {
	svc := &LoginService{Store: newTestStore(t), Signer: newTestSigner(t), Issuer: testIssuer}

	_, err := svc.Login(context.Background(), "", "")

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"email", "password"}, missing.Fields)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := &LoginService{Store: newTestStore(t), Signer: newTestSigner(t), Issuer: testIssuer}

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	st := newTestStore(t)
	signer := newTestSigner(t)
	ctx := context.Background()

	reg := &RegisterService{Store: st, Blobs: newTestBlobs(t), Signer: signer, Issuer: testIssuer}
	_, _, err := reg.Register(ctx, testRegistration("grace@example.com"))
	require.NoError(t, err)

	svc := &LoginService{Store: st, Signer: signer, Issuer: testIssuer}

	_, err = svc.Login(ctx, "grace@example.com", "not the password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

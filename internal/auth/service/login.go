package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/pkg/cryptox"
	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/covercell/covercell/pkg/slogx"
)

// LoginService authenticates an email/password pair against the stored hash
// and issues a session token. There is no lockout or attempt counter here;
// transport-level rate limiting is the only brake.
type LoginService struct {
	Store  store.Store
	Signer *jwtx.HS256
	Issuer string
}

// Login returns a signed session token for valid credentials.
func (s *LoginService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)

	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return "", &MissingFieldsError{Fields: missing}
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login rejected", slog.String("user_id", user.ID))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify password: %w", err)
	}

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(
		user.ID, user.Email, user.Role.String(), s.Issuer, time.Now().UTC()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	log.Info("login succeeded", slog.String("user_id", user.ID))
	return token, nil
}

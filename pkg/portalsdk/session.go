package portalsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionExpired is returned by Session methods once the token's lifetime
// has passed. The portal has no refresh flow; the user logs in again.
var ErrSessionExpired = errors.New("session expired")

// Session is an authenticated handle on the portal API. It mirrors the
// browser's behavior: the token is held client-side and identity comes from
// the token's own claims, so a Session can be rebuilt from a stored token
// without a network call.
type Session struct {
	client *SDKClient

	token     string
	userID    string
	email     string
	role      string
	expiresAt time.Time
}

// newSession builds a session from a freshly issued token. The claims are
// decoded without signature verification; only the server's verifier decides
// whether the token is trusted.
func newSession(c *SDKClient, token string) (*Session, error) {
	var claims jwtx.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode session token: %w", err)
	}

	s := &Session{
		client: c,
		token:  token,
		userID: claims.Subject,
		email:  claims.Email,
		role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		s.expiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// NewSessionFromToken rebuilds a session from a previously stored token,
// for example one loaded from a SessionStore at startup.
func (c *SDKClient) NewSessionFromToken(token string) (*Session, error) {
	return newSession(c, token)
}

// Token returns the raw session token for storage.
func (s *Session) Token() string { return s.token }

// UserID returns the session subject.
func (s *Session) UserID() string { return s.userID }

// Email returns the session's email claim.
func (s *Session) Email() string { return s.email }

// Role returns the session's role claim.
func (s *Session) Role() string { return s.role }

// ExpiresAt returns when the token lapses.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the token's lifetime has passed.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

// Me fetches the full enrolled record for the session's subject.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	if s.Expired() {
		return nil, ErrSessionExpired
	}

	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/auth/me", nil,
		map[string]string{"Authorization": "Bearer " + s.token})
	if err != nil {
		return nil, err
	}

	var meResp MeResponse
	if err := decodeResponse(resp, &meResp); err != nil {
		return nil, err
	}
	return &meResp, nil
}

package portalsdk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoStoredSession is returned by Load when no session has been saved.
var ErrNoStoredSession = errors.New("no stored session")

// SessionStore persists a session token across program runs, playing the
// part the browser's local storage does for the web frontend. Clear is the
// logout: the server keeps no session state, so forgetting the token is all
// there is to it.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store writing to the given file path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionStore stores the token under the user config directory.
func DefaultSessionStore() (*SessionStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config dir: %w", err)
	}
	return NewSessionStore(filepath.Join(dir, "covercell", "session")), nil
}

// Save writes the session's token. The file is user-readable only.
func (st *SessionStore) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(st.path, []byte(s.Token()), 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load rebuilds a session from the stored token. An expired token is still
// returned; callers route through Guard to decide what to do with it.
func (st *SessionStore) Load(c *SDKClient) (*Session, error) {
	raw, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoStoredSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return c.NewSessionFromToken(string(raw))
}

// Clear forgets the stored token. Clearing an empty store is not an error.
func (st *SessionStore) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/internal/auth/store"
)

// UserService reads back enrolled users for authenticated sessions.
type UserService struct {
	Store store.Store
}

// GetUserByID loads a user record, mapping a missing row to ErrUserNotFound.
// A valid token whose subject no longer exists lands here, for example after
// a database restore.
func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

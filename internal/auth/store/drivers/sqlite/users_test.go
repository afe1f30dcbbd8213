package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Phone:        "555-0100",
		Address:      "1 Analytical Way",
		City:         "London",
		State:        "LN",
		ZipCode:      "00001",
		PhoneBrand:   "Apple",
		PhoneModel:   "iPhone 15",
		PurchaseDate: "2026-01-15",
		PhoneValue:   "999",
		Plan:         "premium",
		Role:         domain.RoleCustomer,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("ada@example.com")
	u.Images = []string{"uploads/a.jpg", "uploads/b.jpg", "uploads/a.jpg"}

	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, domain.RoleCustomer, got.Role)
	// Submission order survives, duplicates included.
	require.Equal(t, []string{"uploads/a.jpg", "uploads/b.jpg", "uploads/a.jpg"}, got.Images)
	require.False(t, got.CreatedAt.IsZero())

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, got.Email, byID.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().CreateUser(ctx, testUser("dupe@example.com")))

	err := s.Users().CreateUser(ctx, testUser("dupe@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	exists, err := s.Users().EmailExists(ctx, "dupe@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIsEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, s.Users().CreateUser(ctx, testUser("first@example.com")))

	empty, err = s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, testUser("rollback@example.com")); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = s.Users().GetUserByEmail(ctx, "rollback@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

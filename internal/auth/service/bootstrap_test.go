package service

import (
	"context"
	"testing"

	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/pkg/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	svc := &BootstrapService{Store: st}
	require.NoError(t, svc.Bootstrap(ctx))

	admin, err := st.Users().GetUserByEmail(ctx, "admin@covercell.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	owner, err := st.Users().GetUserByEmail(ctx, "shop@covercell.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleShopOwner, owner.Role)

	employee, err := st.Users().GetUserByEmail(ctx, "employee@covercell.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, employee.Role)
}

func TestBootstrapLeavesPopulatedStoreAlone(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	reg := &RegisterService{Store: st, Blobs: newTestBlobs(t), Signer: newTestSigner(t), Issuer: testIssuer}
	_, _, err := reg.Register(ctx, testRegistration("grace@example.com"))
	require.NoError(t, err)

	svc := &BootstrapService{Store: st}
	require.NoError(t, svc.Bootstrap(ctx))

	_, err = st.Users().GetUserByEmail(ctx, "admin@covercell.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBootstrapUsesProvidedPassword(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	svc := &BootstrapService{
		Store: st,
		Accounts: []SeedAccount{
			{FirstName: "Root", LastName: "Admin", Email: "root@covercell.com", Role: domain.RoleAdmin, Password: "s3cret"},
		},
	}
	require.NoError(t, svc.Bootstrap(ctx))

	user, err := st.Users().GetUserByEmail(ctx, "root@covercell.com")
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("s3cret", user.PasswordHash))
}

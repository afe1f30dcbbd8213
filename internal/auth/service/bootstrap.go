package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/pkg/cryptox"
	"github.com/covercell/covercell/pkg/idx"
	"github.com/covercell/covercell/pkg/slogx"
)

// SeedAccount describes one staff account created on first boot.
type SeedAccount struct {
	FirstName string
	LastName  string
	Email     string
	Role      domain.Role

	// Password is optional. When empty a random one is generated and logged
	// once so the operator can capture it.
	Password string
}

// DefaultSeedAccounts are the staff identities the portal ships with. The
// customer role is never seeded; customers enroll through signup.
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{FirstName: "Admin", LastName: "User", Email: "admin@covercell.com", Role: domain.RoleAdmin},
		{FirstName: "Shop", LastName: "Owner", Email: "shop@covercell.com", Role: domain.RoleShopOwner},
		{FirstName: "Shop", LastName: "Employee", Email: "employee@covercell.com", Role: domain.RoleEmployee},
	}
}

// BootstrapService seeds staff accounts into an empty store so the portal is
// reachable on first boot without manual row surgery.
type BootstrapService struct {
	Store    store.Store
	Accounts []SeedAccount
}

// Bootstrap creates the seed accounts if and only if the store holds no
// users. A populated store, seeded or organic, is left untouched.
func (s *BootstrapService) Bootstrap(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check store: %w", err)
	}
	if !empty {
		return nil
	}

	accounts := s.Accounts
	if len(accounts) == 0 {
		accounts = DefaultSeedAccounts()
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, acct := range accounts {
			password := acct.Password
			generated := false
			if password == "" {
				var err error
				password, err = cryptox.GeneratePassword()
				if err != nil {
					return fmt.Errorf("generate seed password: %w", err)
				}
				generated = true
			}

			hash, err := cryptox.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash seed password: %w", err)
			}

			user := domain.User{
				ID:           idx.New().String(),
				FirstName:    acct.FirstName,
				LastName:     acct.LastName,
				Email:        acct.Email,
				PasswordHash: hash,
				Role:         acct.Role,
			}
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return fmt.Errorf("seed %s: %w", acct.Email, err)
			}

			attrs := []any{
				slog.String("email", acct.Email),
				slog.String("role", acct.Role.String()),
			}
			if generated {
				// Logged exactly once, at creation. Rotate after first login.
				attrs = append(attrs, slog.String("password", password))
			}
			log.Info("seeded account", attrs...)
		}
		return nil
	})
}

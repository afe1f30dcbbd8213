package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/covercell/covercell/internal/auth/blob"
	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/pkg/cryptox"
	"github.com/covercell/covercell/pkg/idx"
	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/covercell/covercell/pkg/slogx"
)

const (
	// MaxImages caps device photos per enrollment. The signup form allows
	// four (front, back, both sides).
	MaxImages = 4

	// TermsAccepted is the literal the terms flag must carry. Anything
	// else, including "True" or "1", is a rejection.
	TermsAccepted = "true"
)

// Registration is the intake payload for a new enrollment.
type Registration struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	PhoneBrand   string
	PhoneModel   string
	PurchaseDate string
	PhoneValue   string
	Plan         string
	Terms        string

	Images []ImageUpload
}

// ImageUpload is one device photo from the multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// RegisterService validates an intake payload, enforces email uniqueness,
// persists the record and mints a session token for the new identity.
type RegisterService struct {
	Store  store.Store
	Blobs  blob.Storage
	Signer *jwtx.HS256
	Issuer string
}

// Register runs the enrollment flow. On success exactly one user record
// exists for the email; the returned user carries no password hash and the
// token is immediately usable.
func (s *RegisterService) Register(ctx context.Context, reg Registration) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	if missing := reg.missingFields(); len(missing) > 0 {
		return domain.User{}, "", &MissingFieldsError{Fields: missing}
	}

	if reg.Terms != TermsAccepted {
		return domain.User{}, "", ErrTermsNotAccepted
	}

	if len(reg.Images) > MaxImages {
		return domain.User{}, "", ErrTooManyImages
	}

	// Courtesy pre-check so we don't upload attachments for an obviously
	// doomed enrollment. The unique constraint below remains authoritative.
	exists, err := s.Store.Users().EmailExists(ctx, reg.Email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, "", ErrDuplicateEmail
	}

	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()

	refs, err := s.storeImages(ctx, reg.Images, now)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("store images: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: hash,
		Phone:        reg.Phone,
		Address:      reg.Address,
		City:         reg.City,
		State:        reg.State,
		ZipCode:      reg.ZipCode,
		PhoneBrand:   reg.PhoneBrand,
		PhoneModel:   reg.PhoneModel,
		PurchaseDate: reg.PurchaseDate,
		PhoneValue:   reg.PhoneValue,
		Plan:         reg.Plan,
		Images:       refs,
		Role:         domain.RoleCustomer,
	}

	// User row and image rows land atomically; a concurrent signup for the
	// same email loses on the unique constraint, not on the pre-check.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrDuplicateEmail
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(user.ID, user.Email, user.Role.String(), s.Issuer, now))
	if err != nil {
		return domain.User{}, "", fmt.Errorf("sign token: %w", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("plan", user.Plan),
		slog.Int("images", len(refs)),
	)

	return user, token, nil
}

func (s *RegisterService) storeImages(ctx context.Context, images []ImageUpload, now time.Time) ([]string, error) {
	refs := make([]string, 0, len(images))
	for _, img := range images {
		key := blob.NewKey(img.Filename, now)
		ref, err := s.Blobs.Put(ctx, key, img.ContentType, img.Content)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *Registration) missingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"password", r.Password},
		{"phone", r.Phone},
		{"address", r.Address},
		{"city", r.City},
		{"state", r.State},
		{"zipCode", r.ZipCode},
		{"phoneBrand", r.PhoneBrand},
		{"phoneModel", r.PhoneModel},
		{"purchaseDate", r.PurchaseDate},
		{"phoneValue", r.PhoneValue},
		{"plan", r.Plan},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

package service

import (
	"strings"
	"testing"

	"github.com/covercell/covercell/internal/auth/blob"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/internal/auth/store/drivers/sqlite"
	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "covercell-test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestSigner(t *testing.T) *jwtx.HS256 {
	t.Helper()

	signer, err := jwtx.NewHS256("test-secret", testIssuer)
	require.NoError(t, err)
	return signer
}

func newTestBlobs(t *testing.T) blob.Storage {
	t.Helper()

	blobs, err := blob.NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	return blobs
}

func testRegistration(email string) Registration {
	return Registration{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        email,
		Password:     "correct horse battery",
		Phone:        "555-0142",
		Address:      "1 Harbor Ln",
		City:         "Arlington",
		State:        "VA",
		ZipCode:      "22201",
		PhoneBrand:   "Google",
		PhoneModel:   "Pixel 9",
		PurchaseDate: "2026-03-02",
		PhoneValue:   "799",
		Plan:         "basic",
		Terms:        TermsAccepted,
	}
}

func testImage(name, body string) ImageUpload {
	return ImageUpload{
		Filename:    name,
		ContentType: "image/jpeg",
		Content:     strings.NewReader(body),
	}
}

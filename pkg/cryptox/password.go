package cryptox

import (
	"errors"
	"fmt"
	"math/big"

	"crypto/rand"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for stored secrets. 2^10 rounds
// keeps interactive login latency in the tens of milliseconds.
const HashCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not correspond to the stored hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword produces a salted bcrypt hash of the plaintext. The returned
// string embeds the salt and cost parameters, so it is self-describing and
// safe to persist as-is.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// bcrypt's comparison runs the full key schedule regardless of where the
// inputs diverge. Returns ErrPasswordMismatch on mismatch; any other error
// means the stored hash is malformed.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("cryptox: verify password: %w", err)
}

// GeneratePassword returns a random alphanumeric password. Used when seeding
// operator accounts without an explicit password in the environment.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 16

	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("cryptox: generate password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}

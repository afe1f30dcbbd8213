package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTermsNotAccepted   = errors.New("terms_not_accepted")
	ErrDuplicateEmail     = errors.New("duplicate_email")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnknownPlan        = errors.New("unknown_plan")
	ErrTooManyImages      = errors.New("too_many_images")
)

// MissingFieldsError reports which required intake fields were empty.
// Matched with errors.As at the handler boundary.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

package http

import (
	"errors"
	"net/http"

	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/portalsdk"
	"github.com/covercell/covercell/pkg/slogx"
)

func userPayload(u domain.User) portalsdk.UserPayload {
	images := u.Images
	if images == nil {
		images = []string{}
	}
	return portalsdk.UserPayload{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		City:         u.City,
		State:        u.State,
		ZipCode:      u.ZipCode,
		PhoneBrand:   u.PhoneBrand,
		PhoneModel:   u.PhoneModel,
		PurchaseDate: u.PurchaseDate,
		PhoneValue:   u.PhoneValue,
		Plan:         u.Plan,
		Images:       images,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// writeServiceError translates service sentinels into the portal's error
// bodies. Unexpected errors become a 500 with the underlying message
// surfaced, which suits the portal's single-operator posture.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *service.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		httpx.WriteMsg(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, service.ErrTermsNotAccepted):
		httpx.WriteMsg(w, http.StatusBadRequest, "You must accept the terms and conditions")
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteMsg(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, service.ErrTooManyImages):
		httpx.WriteMsg(w, http.StatusBadRequest, "Too many images")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteMsg(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMsg(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, service.ErrUnknownPlan):
		httpx.WriteMsg(w, http.StatusBadRequest, "Unknown plan")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, portalsdk.APIError{
			Msg:    "Server error",
			Detail: err.Error(),
		})
	}
}

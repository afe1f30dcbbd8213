package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/portalsdk"
)

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Exchanges an email and password for a one-hour session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	portalsdk.LoginResponse	"msg, token"
//	@Failure		400		{object}	portalsdk.APIError		"Missing or invalid credentials"
//	@Failure		404		{object}	portalsdk.APIError		"No account for that email"
//	@Failure		500		{object}	portalsdk.APIError		"Internal server error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.LoginService.Login(ctx, req.Email, req.Password)
	if err != nil {
		var missing *service.MissingFieldsError
		if errors.As(err, &missing) {
			httpx.WriteMsg(w, http.StatusBadRequest, "Email and password are required")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalsdk.LoginResponse{
		Msg:   "Login successful",
		Token: token,
	})
}

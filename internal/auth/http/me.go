package http

import (
	"net/http"

	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/portalsdk"
	"github.com/covercell/covercell/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated user's record.
//
//	@Summary		Get current user
//	@Description	Returns the enrolled record for the session's subject.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.MeResponse	"user"
//	@Failure		401	{object}	portalsdk.APIError		"Invalid or missing session token"
//	@Failure		404	{object}	portalsdk.APIError		"Token subject no longer exists"
//	@Failure		500	{object}	portalsdk.APIError		"Internal server error"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		httpx.WriteMsg(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalsdk.MeResponse{User: userPayload(user)})
}

package http

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/portalsdk"
)

type QuoteHandler struct {
	QuoteService *service.QuoteService
}

// ServeHTTP prices a quote request.
//
//	@Summary		Estimate a monthly premium
//	@Description	Prices a plan plus selected add-ons, with surcharges for high device value and worn condition.
//	@Description	Nothing is persisted; the endpoint is a calculator for the quote form.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.QuoteRequest	true	"Quote inputs"
//	@Success		200		{object}	portalsdk.QuoteResponse	"itemized premium in cents"
//	@Failure		400		{object}	portalsdk.APIError		"Unknown plan or add-on"
//	@Router			/api/quote [post].
func (h *QuoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req portalsdk.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, "Request body is missing")
		return
	}

	quote, err := h.QuoteService.Estimate(r.Context(), service.QuoteRequest{
		Plan:       req.Plan,
		AddOns:     req.AddOns,
		ValueCents: int64(math.Round(req.PhoneValue * 100)),
		Condition:  req.Condition,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	addOns := make([]string, 0, len(quote.AddOns))
	for _, a := range quote.AddOns {
		addOns = append(addOns, a.ID)
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.QuoteResponse{
		Plan:           quote.Plan.ID,
		AddOns:         addOns,
		BaseCents:      quote.BaseCents,
		AddOnCents:     quote.AddOnCents,
		ValueCents:     quote.ValueCents,
		ConditionCents: quote.ConditionCents,
		TotalCents:     quote.TotalCents,
	})
}

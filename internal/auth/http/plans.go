package http

import (
	"net/http"
	"sort"

	"github.com/covercell/covercell/internal/auth/domain"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/portalsdk"
)

type PlansHandler struct{}

// ServeHTTP returns the coverage catalog.
//
//	@Summary		List plans and add-ons
//	@Description	Returns the coverage plan catalog with optional add-ons. Plans are ordered by price.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	portalsdk.PlansResponse	"plans, addOns"
//	@Router			/api/plans [get].
func (h *PlansHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := portalsdk.PlansResponse{
		Plans:  make([]portalsdk.PlanPayload, 0, len(domain.Plans)),
		AddOns: make([]portalsdk.AddOnPayload, 0, len(domain.AddOns)),
	}

	for _, p := range domain.Plans {
		resp.Plans = append(resp.Plans, portalsdk.PlanPayload{
			ID:         p.ID,
			Name:       p.Name,
			BaseCents:  int64(p.BaseCents),
			MaxDevices: p.MaxDevices,
			Features:   p.Features,
		})
	}
	sort.Slice(resp.Plans, func(i, j int) bool {
		return resp.Plans[i].BaseCents < resp.Plans[j].BaseCents
	})

	for _, a := range domain.AddOns {
		resp.AddOns = append(resp.AddOns, portalsdk.AddOnPayload{
			ID:          a.ID,
			Name:        a.Name,
			PriceCents:  int64(a.PriceCents),
			Description: a.Description,
		})
	}
	sort.Slice(resp.AddOns, func(i, j int) bool {
		return resp.AddOns[i].PriceCents < resp.AddOns[j].PriceCents
	})

	httpx.WriteJSON(w, http.StatusOK, resp)
}

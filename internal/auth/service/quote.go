package service

import (
	"context"
	"fmt"

	"github.com/covercell/covercell/internal/auth/domain"
)

// Conditions accepted by QuoteService. Anything else quotes as "good".
const (
	ConditionGood = "good"
	ConditionFair = "fair"
	ConditionPoor = "poor"
)

// QuoteRequest carries the inputs of a premium estimate. ValueCents is the
// declared device value; AddOns lists add-on IDs from the catalog.
type QuoteRequest struct {
	Plan       string
	AddOns     []string
	ValueCents int64
	Condition  string
}

// Quote is a priced estimate broken down per line so the caller can render
// an itemized summary.
type Quote struct {
	Plan           domain.Plan
	AddOns         []domain.AddOn
	BaseCents      int64
	AddOnCents     int64
	ValueCents     int64 // value surcharge
	ConditionCents int64 // condition surcharge
	TotalCents     int64 // monthly premium
}

// QuoteService estimates a monthly premium from the static plan catalog.
// It is pure computation; nothing is persisted.
type QuoteService struct{}

// Estimate prices a quote request. Unknown plans and add-ons return
// ErrUnknownPlan so that typos surface instead of silently pricing zero.
func (s *QuoteService) Estimate(_ context.Context, req QuoteRequest) (Quote, error) {
	plan, ok := domain.Plans[req.Plan]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownPlan, req.Plan)
	}

	q := Quote{
		Plan:      plan,
		BaseCents: int64(plan.BaseCents),
	}

	for _, id := range req.AddOns {
		addOn, ok := domain.AddOns[id]
		if !ok {
			return Quote{}, fmt.Errorf("%w: add-on %q", ErrUnknownPlan, id)
		}
		q.AddOns = append(q.AddOns, addOn)
		q.AddOnCents += int64(addOn.PriceCents)
	}

	switch {
	case req.ValueCents > 100_000:
		q.ValueCents = 200
	case req.ValueCents > 50_000:
		q.ValueCents = 100
	}

	switch req.Condition {
	case ConditionFair:
		q.ConditionCents = 100
	case ConditionPoor:
		q.ConditionCents = 200
	}

	q.TotalCents = q.BaseCents + q.AddOnCents + q.ValueCents + q.ConditionCents
	return q, nil
}

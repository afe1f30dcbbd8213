package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	svc := &QuoteService{}
	ctx := context.Background()

	tests := []struct {
		name string
		req  QuoteRequest
		want int64
	}{
		{
			name: "basic plan no extras",
			req:  QuoteRequest{Plan: "basic", ValueCents: 30_000, Condition: ConditionGood},
			want: 999,
		},
		{
			name: "value over 500 adds a dollar",
			req:  QuoteRequest{Plan: "basic", ValueCents: 79_900, Condition: ConditionGood},
			want: 999 + 100,
		},
		{
			name: "value over 1000 adds two dollars",
			req:  QuoteRequest{Plan: "premium", ValueCents: 129_900, Condition: ConditionGood},
			want: 1999 + 200,
		},
		{
			name: "fair condition surcharge",
			req:  QuoteRequest{Plan: "basic", ValueCents: 30_000, Condition: ConditionFair},
			want: 999 + 100,
		},
		{
			name: "poor condition surcharge",
			req:  QuoteRequest{Plan: "basic", ValueCents: 30_000, Condition: ConditionPoor},
			want: 999 + 200,
		},
		{
			name: "add-ons stack",
			req: QuoteRequest{
				Plan:       "family",
				AddOns:     []string{"express", "international", "accessories"},
				ValueCents: 30_000,
				Condition:  ConditionGood,
			},
			want: 3499 + 499 + 299 + 199,
		},
		{
			name: "everything at once",
			req: QuoteRequest{
				Plan:       "premium",
				AddOns:     []string{"express"},
				ValueCents: 119_900,
				Condition:  ConditionPoor,
			},
			want: 1999 + 499 + 200 + 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.Estimate(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.TotalCents)
		})
	}
}

func TestEstimateUnknownPlan(t *testing.T) {
	svc := &QuoteService{}

	_, err := svc.Estimate(context.Background(), QuoteRequest{Plan: "platinum"})
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestEstimateUnknownAddOn(t *testing.T) {
	svc := &QuoteService{}

	_, err := svc.Estimate(context.Background(), QuoteRequest{
		Plan:   "basic",
		AddOns: []string{"warp-drive"},
	})
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

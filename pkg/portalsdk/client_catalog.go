package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Plans fetches the coverage catalog.
func (c *SDKClient) Plans(ctx context.Context) (*PlansResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/plans", nil, nil)
	if err != nil {
		return nil, err
	}

	var plansResp PlansResponse
	if err := decodeResponse(resp, &plansResp); err != nil {
		return nil, err
	}
	return &plansResp, nil
}

// Quote prices a premium estimate.
func (c *SDKClient) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/quote", bytes.NewReader(payload),
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return nil, err
	}

	var quoteResp QuoteResponse
	if err := decodeResponse(resp, &quoteResp); err != nil {
		return nil, err
	}
	return &quoteResp, nil
}

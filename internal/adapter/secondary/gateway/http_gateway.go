package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/output"
)

// HTTPGateway is a secondary adapter that delegates the authorization
// decision to a real external service. Any transport failure or non-2xx
// response is a GatewayError; only an explicit SUCCESS/FAILED status from
// the upstream body counts as a decision.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPGateway creates a gateway client for the authorization service at
// baseURL. A nil client gets a default with a 10-second timeout, which
// bounds how long a request can wait on the gateway.
func NewHTTPGateway(baseURL, apiKey string, client *http.Client) output.PaymentGateway {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type authorizeRequest struct {
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CardNumber    string `json:"card_number"`
}

type authorizeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Authorize posts the authorization request upstream and maps the reply
// onto the gateway port's contract.
func (g *HTTPGateway) Authorize(ctx context.Context, req output.AuthorizationRequest) (output.AuthorizationResult, error) {
	if g.apiKey == "" {
		return output.AuthorizationResult{}, core.NewEnvironmentError("API Key is missing.")
	}

	body, err := json.Marshal(authorizeRequest{
		TransactionID: req.TransactionID.String(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		CardNumber:    req.CardNumber,
	})
	if err != nil {
		return output.AuthorizationResult{}, core.NewGatewayError(fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/authorize", bytes.NewReader(body))
	if err != nil {
		return output.AuthorizationResult{}, core.NewGatewayError(fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return output.AuthorizationResult{}, core.NewGatewayError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return output.AuthorizationResult{}, core.NewGatewayError(
			fmt.Errorf("authorize status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b))))
	}

	var out authorizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return output.AuthorizationResult{}, core.NewGatewayError(fmt.Errorf("decode response: %w", err))
	}

	outcome := core.Status(out.Status)
	if !outcome.Valid() {
		return output.AuthorizationResult{}, core.NewGatewayError(fmt.Errorf("unexpected gateway status %q", out.Status))
	}

	return output.AuthorizationResult{Outcome: outcome, Message: out.Message}, nil
}

package gateway

import (
	"context"
	"strings"

	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/output"
)

// declinePrefix is a deterministic test hook, not a real risk rule: any
// card number starting with it is declined.
const declinePrefix = "4000"

// SimulatedGateway is a secondary adapter that makes the authorization
// decision locally. It sits behind the same PaymentGateway port as the
// real HTTP client so the two are interchangeable.
type SimulatedGateway struct {
	apiKey string
}

// NewSimulatedGateway creates a simulated gateway client
func NewSimulatedGateway(apiKey string) output.PaymentGateway {
	return &SimulatedGateway{apiKey: apiKey}
}

// Authorize applies the simulated decision rule. An empty API key is an
// operator configuration problem and fails before any decision is made.
func (g *SimulatedGateway) Authorize(_ context.Context, req output.AuthorizationRequest) (output.AuthorizationResult, error) {
	if g.apiKey == "" {
		return output.AuthorizationResult{}, core.NewEnvironmentError("API Key is missing.")
	}

	if strings.HasPrefix(req.CardNumber, declinePrefix) {
		return output.AuthorizationResult{
			Outcome: core.StatusFailed,
			Message: "Card declined: Insufficient funds (Simulation).",
		}, nil
	}

	return output.AuthorizationResult{
		Outcome: core.StatusSuccess,
		Message: "Payment successfully processed by external gateway.",
	}, nil
}

package output

import (
	"context"

	"github.com/google/uuid"
	"github.com/securepay/payment-gateway/internal/core"
)

// AuthorizationRequest carries what the external gateway needs to make an
// authorization decision
type AuthorizationRequest struct {
	TransactionID uuid.UUID
	Amount        int64
	Currency      string
	CardNumber    string
}

// AuthorizationResult is the gateway's decision. Outcome is FAILED for a
// decline; transport or configuration failures are returned as errors, not
// as an outcome.
type AuthorizationResult struct {
	Outcome core.Status
	Message string
}

// PaymentGateway is an output port (secondary port) for the external
// authorization decision. The simulated client and the real HTTP client
// both implement it, so swapping them never touches the pipeline.
type PaymentGateway interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (AuthorizationResult, error)
}

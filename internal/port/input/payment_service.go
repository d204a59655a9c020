package input

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentService is an input port (primary port) for payment operations
// Primary adapters (HTTP handlers) will use this
type PaymentService interface {
	// ProcessPayment runs one payment attempt end to end: validation,
	// masking, gateway authorization, persistence, response
	ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*PaymentResult, error)
}

// ProcessPaymentRequest represents the untrusted inbound payment request
type ProcessPaymentRequest struct {
	Amount      int64
	Currency    string
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

// PaymentResult represents the outcome of a processed payment. A gateway
// decline is a normal result with Success=false, not an error.
type PaymentResult struct {
	Success       bool
	TransactionID uuid.UUID
	Message       string
	Timestamp     time.Time
}

package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/input"
	"github.com/securepay/payment-gateway/internal/port/output"
)

// PaymentServiceImpl implements the PaymentService input port
type PaymentServiceImpl struct {
	transactionRepo output.TransactionRepository
	gateway         output.PaymentGateway
	events          output.TransactionEvents
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	transactionRepo output.TransactionRepository,
	gateway output.PaymentGateway,
	events output.TransactionEvents,
) input.PaymentService {
	return &PaymentServiceImpl{
		transactionRepo: transactionRepo,
		gateway:         gateway,
		events:          events,
	}
}

// ProcessPayment runs one payment attempt through the fixed sequence:
// validate, mask, authorize, persist, respond. The sequence is strictly
// linear; no stage re-enters an earlier one.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req input.ProcessPaymentRequest) (*input.PaymentResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	maskedCard := core.MaskCard(req.CardNumber)
	transactionID := uuid.New()

	// A gateway failure means nothing is persisted: the transaction is
	// only recorded once an authorization decision exists.
	result, err := s.gateway.Authorize(ctx, output.AuthorizationRequest{
		TransactionID: transactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CardNumber:    req.CardNumber,
	})
	if err != nil {
		return nil, err
	}

	transaction := &core.Transaction{
		ID:               transactionID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Status:           result.Outcome,
		MaskedCardNumber: maskedCard,
	}

	// If this write fails the gateway's decision is lost: there is no
	// retry, reversal or outbox. The caller gets an error and no response
	// body references the transaction.
	if err := s.transactionRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	if err := s.events.PublishTransactionRecorded(transaction); err != nil {
		log.Printf("Failed to publish event for transaction %s: %v", transaction.ID, err)
	}

	if transaction.Succeeded() {
		log.Printf("Successful payment: %s (%d %s)", maskedCard, req.Amount, req.Currency)
	} else {
		log.Printf("Failed payment: %s (%d %s)", maskedCard, req.Amount, req.Currency)
	}

	// A decline is a normal, structured response with Success=false
	return &input.PaymentResult{
		Success:       transaction.Succeeded(),
		TransactionID: transactionID,
		Message:       result.Message,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// validate checks the request shape before any I/O. Rules are applied in
// order and the first failure wins. Expiry and CVV values are accepted
// as-is.
func validate(req input.ProcessPaymentRequest) error {
	if req.Amount <= 0 {
		return core.NewBadRequest("Payment amount must be greater than zero.")
	}
	if len(req.CardNumber) < 12 || len(req.CardNumber) > 19 {
		return core.NewBadRequest("Invalid card number.")
	}
	return nil
}

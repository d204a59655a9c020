package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/securepay/payment-gateway/internal/adapter/secondary/gateway"
	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/core/service"
	"github.com/securepay/payment-gateway/internal/port/input"
	"github.com/securepay/payment-gateway/internal/port/output"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []*core.Transaction
	err     error
}

func (f *fakeRepo) CreateTransaction(_ context.Context, transaction *core.Transaction) error {
	if f.err != nil {
		return f.err
	}
	transaction.CreatedAt = time.Now().UTC()
	f.created = append(f.created, transaction)
	return nil
}

type fakeGateway struct {
	calls  int
	result output.AuthorizationResult
	err    error
}

func (f *fakeGateway) Authorize(_ context.Context, _ output.AuthorizationRequest) (output.AuthorizationResult, error) {
	f.calls++
	if f.err != nil {
		return output.AuthorizationResult{}, f.err
	}
	return f.result, nil
}

type fakeEvents struct {
	published []*core.Transaction
	err       error
}

func (f *fakeEvents) PublishTransactionRecorded(transaction *core.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, transaction)
	return nil
}

func (f *fakeEvents) Close() error { return nil }

func validRequest() input.ProcessPaymentRequest {
	return input.ProcessPaymentRequest{
		Amount:      1000,
		Currency:    "USD",
		CardNumber:  "4111111111111111",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	}
}

func TestProcessPaymentValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*input.ProcessPaymentRequest)
		message string
	}{
		{
			name:    "zero amount",
			mutate:  func(r *input.ProcessPaymentRequest) { r.Amount = 0 },
			message: "Payment amount must be greater than zero.",
		},
		{
			name:    "negative amount",
			mutate:  func(r *input.ProcessPaymentRequest) { r.Amount = -500 },
			message: "Payment amount must be greater than zero.",
		},
		{
			name:    "card number too short",
			mutate:  func(r *input.ProcessPaymentRequest) { r.CardNumber = "41111111" },
			message: "Invalid card number.",
		},
		{
			name:    "card number too long",
			mutate:  func(r *input.ProcessPaymentRequest) { r.CardNumber = "41111111111111111111" },
			message: "Invalid card number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			gw := &fakeGateway{}
			svc := service.NewPaymentService(repo, gw, &fakeEvents{})

			req := validRequest()
			tt.mutate(&req)

			result, err := svc.ProcessPayment(context.Background(), req)
			require.Nil(t, result)

			var appErr *core.Error
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, core.KindBadRequest, appErr.Kind)
			require.Equal(t, tt.message, appErr.Message)

			// Rejected requests reach neither the gateway nor the store
			require.Zero(t, gw.calls)
			require.Empty(t, repo.created)
		})
	}
}

func TestProcessPaymentAmountCheckedFirst(t *testing.T) {
	repo := &fakeRepo{}
	svc := service.NewPaymentService(repo, &fakeGateway{}, &fakeEvents{})

	req := validRequest()
	req.Amount = 0
	req.CardNumber = "123" // also invalid

	_, err := svc.ProcessPayment(context.Background(), req)

	var appErr *core.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "Payment amount must be greater than zero.", appErr.Message)
}

func TestProcessPaymentApproved(t *testing.T) {
	repo := &fakeRepo{}
	events := &fakeEvents{}
	svc := service.NewPaymentService(repo, gateway.NewSimulatedGateway("sk_test_123"), events)

	result, err := svc.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Equal(t, "Payment successfully processed by external gateway.", result.Message)
	require.NotEqual(t, uuid.Nil, result.TransactionID)

	require.Len(t, repo.created, 1)
	tx := repo.created[0]
	require.Equal(t, result.TransactionID, tx.ID)
	require.Equal(t, core.StatusSuccess, tx.Status)
	require.Equal(t, int64(1000), tx.Amount)
	require.Equal(t, "USD", tx.Currency)
	require.Equal(t, "XXXX-XXXX-XXXX-1111", tx.MaskedCardNumber)
	require.False(t, tx.CreatedAt.IsZero())

	require.Len(t, events.published, 1)
	require.Equal(t, tx, events.published[0])
}

func TestProcessPaymentDeclined(t *testing.T) {
	repo := &fakeRepo{}
	svc := service.NewPaymentService(repo, gateway.NewSimulatedGateway("sk_test_123"), &fakeEvents{})

	req := validRequest()
	req.CardNumber = "4000000000000002"

	result, err := svc.ProcessPayment(context.Background(), req)
	require.NoError(t, err, "a decline is a normal outcome, not an error")

	require.False(t, result.Success)
	require.Equal(t, "Card declined: Insufficient funds (Simulation).", result.Message)

	// The decline is still persisted, under the same id the caller sees
	require.Len(t, repo.created, 1)
	require.Equal(t, core.StatusFailed, repo.created[0].Status)
	require.Equal(t, result.TransactionID, repo.created[0].ID)
	require.Equal(t, "XXXX-XXXX-XXXX-0002", repo.created[0].MaskedCardNumber)
}

func TestProcessPaymentMissingAPIKey(t *testing.T) {
	repo := &fakeRepo{}
	svc := service.NewPaymentService(repo, gateway.NewSimulatedGateway(""), &fakeEvents{})

	result, err := svc.ProcessPayment(context.Background(), validRequest())
	require.Nil(t, result)

	var appErr *core.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, core.KindEnvironment, appErr.Kind)
	require.Equal(t, "API Key is missing.", appErr.Message)

	require.Empty(t, repo.created)
}

func TestProcessPaymentGatewayFailure(t *testing.T) {
	repo := &fakeRepo{}
	gw := &fakeGateway{err: core.NewGatewayError(errors.New("connection refused"))}
	svc := service.NewPaymentService(repo, gw, &fakeEvents{})

	result, err := svc.ProcessPayment(context.Background(), validRequest())
	require.Nil(t, result)

	var appErr *core.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, core.KindGateway, appErr.Kind)

	// Nothing is persisted when the gateway fails
	require.Empty(t, repo.created)
}

func TestProcessPaymentPersistenceFailure(t *testing.T) {
	repo := &fakeRepo{err: core.NewDatabaseError(errors.New("connection lost"))}
	events := &fakeEvents{}
	svc := service.NewPaymentService(repo, gateway.NewSimulatedGateway("sk_test_123"), events)

	result, err := svc.ProcessPayment(context.Background(), validRequest())
	require.Nil(t, result)

	var appErr *core.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, core.KindDatabase, appErr.Kind)

	// No response, no event: the gateway decision is lost by design
	require.Empty(t, events.published)
}

func TestProcessPaymentPublishFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeRepo{}
	events := &fakeEvents{err: errors.New("broker unavailable")}
	svc := service.NewPaymentService(repo, gateway.NewSimulatedGateway("sk_test_123"), events)

	result, err := svc.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, repo.created, 1)
}

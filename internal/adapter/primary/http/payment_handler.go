package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/input"
)

// timestampLayout renders response timestamps as naive UTC (no offset)
const timestampLayout = "2006-01-02T15:04:05.999999"

// PaymentHandler is a primary adapter (HTTP handler)
type PaymentHandler struct {
	paymentService input.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService input.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// PaymentRequest represents the HTTP request to process a payment
type PaymentRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// PaymentResponse represents the HTTP response for a processed payment.
// Declines come back with Success=false over HTTP 200; only pipeline
// failures use error status codes.
type PaymentResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}

// ProcessPayment handles POST /api/payment
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	result, err := h.paymentService.ProcessPayment(c.Request().Context(), input.ProcessPaymentRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, PaymentResponse{
		Success:       result.Success,
		TransactionID: result.TransactionID.String(),
		Message:       result.Message,
		Timestamp:     result.Timestamp.UTC().Format(timestampLayout),
	})
}

// writeError maps a pipeline error onto its transport status and
// caller-visible message. Database detail is logged here and never echoed.
func (h *PaymentHandler) writeError(c echo.Context, err error) error {
	var appErr *core.Error
	if !errors.As(err, &appErr) {
		appErr = core.NewInternalError("Internal server error.", err)
	}

	if appErr.Kind == core.KindDatabase {
		log.Printf("Database error: %v", err)
	}

	return c.JSON(appErr.HTTPStatus(), map[string]string{
		"error": appErr.PublicMessage(),
	})
}

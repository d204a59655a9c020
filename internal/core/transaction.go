package core

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the outcome of a payment attempt
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Valid checks that the status is one of the two known outcomes
func (s Status) Valid() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Transaction represents the durable record of one payment attempt.
// A transaction is written exactly once and never updated or deleted.
type Transaction struct {
	ID               uuid.UUID
	Amount           int64
	Currency         string
	Status           Status
	MaskedCardNumber string
	CreatedAt        time.Time
}

// Succeeded checks if the gateway approved this payment
func (t *Transaction) Succeeded() bool {
	return t.Status == StatusSuccess
}

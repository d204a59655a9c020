package output

import (
	"context"

	"github.com/securepay/payment-gateway/internal/core"
)

// TransactionRepository is an output port (secondary port) for transaction
// persistence. Secondary adapters (database implementations) will implement this
type TransactionRepository interface {
	// CreateTransaction durably appends one transaction row. The pipeline
	// never reads, updates or deletes transactions, so no other operation
	// exists on this port.
	CreateTransaction(ctx context.Context, transaction *core.Transaction) error
}

package output

import (
	"github.com/securepay/payment-gateway/internal/core"
)

// TransactionEvents is an output port (secondary port) for post-persistence
// notifications. Publishing is best effort: the durable record already
// exists when an event is published, so a publish failure never fails the
// payment request.
type TransactionEvents interface {
	// PublishTransactionRecorded announces a newly persisted transaction
	PublishTransactionRecorded(transaction *core.Transaction) error
	// Close closes the messaging connection
	Close() error
}

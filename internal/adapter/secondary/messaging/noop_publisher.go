package messaging

import (
	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/output"
)

// NoopPublisher satisfies the TransactionEvents port when no message
// broker is configured. Event publishing is supplemental, so running
// without a broker is a supported deployment.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards all events
func NewNoopPublisher() output.TransactionEvents {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishTransactionRecorded(_ *core.Transaction) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

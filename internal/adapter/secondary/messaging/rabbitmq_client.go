package messaging

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/output"
)

const (
	ExchangeName  = "transactions"
	QueueName     = "transaction_audit"
	RoutingKey    = "transaction.recorded"
	PrefetchCount = 1 // Process one message at a time per worker
)

// TransactionMessage announces a persisted transaction to audit consumers
type TransactionMessage struct {
	TransactionUUID uuid.UUID `json:"transaction_uuid"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
}

// RabbitMQClient is a secondary adapter that implements the
// TransactionEvents output port
type RabbitMQClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitMQClient creates a new RabbitMQ client (returns interface for ports)
func NewRabbitMQClient(amqpURL string) (output.TransactionEvents, error) {
	return NewRabbitMQClientConcrete(amqpURL)
}

// NewRabbitMQClientConcrete creates a new RabbitMQ client (returns concrete type for workers)
func NewRabbitMQClientConcrete(amqpURL string) (*RabbitMQClient, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare exchange
	err = channel.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	// Declare queue
	_, err = channel.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	// Bind queue to exchange
	err = channel.QueueBind(
		QueueName,
		RoutingKey,
		ExchangeName,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &RabbitMQClient{
		conn:    conn,
		channel: channel,
	}, nil
}

// PublishTransactionRecorded publishes an audit event for a persisted
// transaction. The durable row already exists, so callers treat failures
// here as log-and-continue.
func (c *RabbitMQClient) PublishTransactionRecorded(transaction *core.Transaction) error {
	message := TransactionMessage{
		TransactionUUID: transaction.ID,
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Status:          string(transaction.Status),
		Timestamp:       transaction.CreatedAt,
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = c.channel.Publish(
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent, // Make message persistent
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// ConsumeTransactionMessages starts consuming transaction audit messages
func (c *RabbitMQClient) ConsumeTransactionMessages(handler func(TransactionMessage) error) error {
	// Set QoS to process one message at a time
	err := c.channel.Qos(
		PrefetchCount,
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := c.channel.Consume(
		QueueName,
		"",    // consumer tag
		false, // auto-ack (we'll manually ack after processing)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Println("Started consuming transaction messages...")

	go func() {
		for msg := range msgs {
			var txMsg TransactionMessage
			if err := json.Unmarshal(msg.Body, &txMsg); err != nil {
				log.Printf("Dropping malformed message: %v", err)
				msg.Ack(false) // Malformed payloads never become valid; don't requeue
				continue
			}

			if err := handler(txMsg); err != nil {
				log.Printf("Error handling transaction %s: %v", txMsg.TransactionUUID, err)
				msg.Nack(false, true) // Requeue for retry
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}

// Close closes the RabbitMQ connection
func (c *RabbitMQClient) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

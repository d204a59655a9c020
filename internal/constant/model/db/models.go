package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a transaction row in the database. Rows are
// insert-only: the pipeline never updates or deletes them.
type Transaction struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionUUID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_uuid"`
	Amount           int64     `gorm:"not null" json:"amount"`
	Currency         string    `gorm:"type:varchar(3);not null" json:"currency"`
	Status           string    `gorm:"type:varchar(20);not null" json:"status"`
	MaskedCardNumber string    `gorm:"type:varchar(32);not null" json:"masked_card_number"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate is a GORM hook that runs before creating a record
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return nil
}

package database

import (
	"context"
	"fmt"

	"github.com/securepay/payment-gateway/internal/constant/model/db"
	"github.com/securepay/payment-gateway/internal/core"
	"github.com/securepay/payment-gateway/internal/port/output"
	"gorm.io/gorm"
)

// GormTransactionRepository is a secondary adapter that implements the
// TransactionRepository output port
type GormTransactionRepository struct {
	gormDB *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(gormDB *gorm.DB) output.TransactionRepository {
	return &GormTransactionRepository{gormDB: gormDB}
}

// fromCore converts core.Transaction to db.Transaction
func fromCore(t *core.Transaction) *db.Transaction {
	return &db.Transaction{
		TransactionUUID:  t.ID,
		Amount:           t.Amount,
		Currency:         t.Currency,
		Status:           string(t.Status),
		MaskedCardNumber: t.MaskedCardNumber,
		CreatedAt:        t.CreatedAt,
	}
}

// CreateTransaction appends one transaction row. Driver failures are
// mapped to the pipeline's DatabaseError kind here, at the boundary.
func (r *GormTransactionRepository) CreateTransaction(ctx context.Context, transaction *core.Transaction) error {
	row := fromCore(transaction)
	if err := r.gormDB.WithContext(ctx).Create(row).Error; err != nil {
		return core.NewDatabaseError(fmt.Errorf("failed to create transaction: %w", err))
	}
	// Reflect the persistence-time timestamp set by the GORM hook
	transaction.CreatedAt = row.CreatedAt
	return nil
}

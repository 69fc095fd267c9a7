// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	"github.com/aminenidae/braincoinz/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. It is read-only: ledger entries are written through
// WalletRepository.Commit.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// ListByWallet retrieves a wallet's history newest-first, paginated.
func (r *transactionRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, page, limit int) (*entity.TransactionListResult, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("wallet_id = ?", walletID).
		Count(&total)
	if result.Error != nil {
		return nil, result.Error
	}

	var txModels []model.TransactionModel
	result = r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("timestamp DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i, tm := range txModels {
		transactions[i] = tm.ToEntity()
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}

// SumValidAmounts returns the sum of Amount over all valid transactions for
// a wallet. With an append-only history this sum always equals the wallet
// balance; it exists so the invariant can be audited.
func (r *transactionRepository) SumValidAmounts(ctx context.Context, walletID uuid.UUID) (int, error) {
	var total int
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("wallet_id = ? AND is_valid = ?", walletID, true).
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}

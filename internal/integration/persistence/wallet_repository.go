// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create stores a freshly provisioned wallet.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Create(walletModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByChildID retrieves the wallet for a child profile.
func (r *walletRepository) FindByChildID(ctx context.Context, childID uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := r.db.WithContext(ctx).Where("child_id = ?", childID).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

// Commit stores the outcome of one ledger operation: the updated wallet,
// the transactions it produced, and any goal updates, all in a single
// database transaction. A partial write can never leave the history and the
// balance disagreeing.
func (r *walletRepository) Commit(ctx context.Context, wallet *entity.Wallet, transactions []*entity.Transaction, goals []*entity.Goal) error {
	walletModel := model.WalletFromEntity(wallet)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(walletModel).Error; err != nil {
			return err
		}
		for _, t := range transactions {
			if err := tx.Create(model.TransactionFromEntity(t)).Error; err != nil {
				return err
			}
		}
		for _, g := range goals {
			if err := tx.Save(model.GoalFromEntity(g)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

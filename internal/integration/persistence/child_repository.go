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

// childRepository implements the adapter.ChildRepository interface.
type childRepository struct {
	db *gorm.DB
}

// NewChildRepository creates a new child repository instance.
func NewChildRepository(db *gorm.DB) adapter.ChildRepository {
	return &childRepository{
		db: db,
	}
}

// CreateWithWallet stores a new child profile and its wallet in one database
// transaction so a child row can never exist without a wallet row.
func (r *childRepository) CreateWithWallet(ctx context.Context, child *entity.Child, wallet *entity.Wallet) error {
	childModel := model.ChildFromEntity(child)
	walletModel := model.WalletFromEntity(wallet)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(childModel).Error; err != nil {
			return err
		}
		if err := tx.Create(walletModel).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID retrieves a child profile by its ID.
func (r *childRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var childModel model.ChildModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&childModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChildNotFound
		}
		return nil, result.Error
	}
	return childModel.ToEntity(), nil
}

// ListByParent retrieves all child profiles for a parent.
func (r *childRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	var childModels []model.ChildModel
	result := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&childModels)
	if result.Error != nil {
		return nil, result.Error
	}

	children := make([]*entity.Child, len(childModels))
	for i, cm := range childModels {
		children[i] = cm.ToEntity()
	}
	return children, nil
}

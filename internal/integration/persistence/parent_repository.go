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

// parentRepository implements the adapter.ParentRepository interface.
type parentRepository struct {
	db *gorm.DB
}

// NewParentRepository creates a new parent repository instance.
func NewParentRepository(db *gorm.DB) adapter.ParentRepository {
	return &parentRepository{
		db: db,
	}
}

// Create creates a new parent account in the database.
func (r *parentRepository) Create(ctx context.Context, parent *entity.Parent) error {
	parentModel := model.ParentFromEntity(parent)
	result := r.db.WithContext(ctx).Create(parentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a parent by its ID.
func (r *parentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error) {
	var parentModel model.ParentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&parentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrParentNotFound
		}
		return nil, result.Error
	}
	return parentModel.ToEntity(), nil
}

// FindByEmail retrieves a parent by email.
func (r *parentRepository) FindByEmail(ctx context.Context, email string) (*entity.Parent, error) {
	var parentModel model.ParentModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&parentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrParentNotFound
		}
		return nil, result.Error
	}
	return parentModel.ToEntity(), nil
}

// ExistsByEmail checks whether a parent is registered with the email.
func (r *parentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ParentModel{}).
		Where("email = ?", email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

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

// appConfigRepository implements the adapter.AppConfigRepository interface.
type appConfigRepository struct {
	db *gorm.DB
}

// NewAppConfigRepository creates a new app config repository instance.
func NewAppConfigRepository(db *gorm.DB) adapter.AppConfigRepository {
	return &appConfigRepository{
		db: db,
	}
}

// Create stores a new app configuration.
func (r *appConfigRepository) Create(ctx context.Context, config *entity.AppConfig) error {
	configModel := model.AppConfigFromEntity(config)
	result := r.db.WithContext(ctx).Create(configModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an app configuration by its ID.
func (r *appConfigRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AppConfig, error) {
	var configModel model.AppConfigModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&configModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAppConfigNotFound
		}
		return nil, result.Error
	}
	return configModel.ToEntity(), nil
}

// FindByParentAndAppID retrieves a parent's configuration for an app bundle
// identifier.
func (r *appConfigRepository) FindByParentAndAppID(ctx context.Context, parentID uuid.UUID, appID string) (*entity.AppConfig, error) {
	var configModel model.AppConfigModel
	result := r.db.WithContext(ctx).
		Where("parent_id = ? AND app_id = ?", parentID, appID).
		First(&configModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAppNotConfigured
		}
		return nil, result.Error
	}
	return configModel.ToEntity(), nil
}

// ListByParent retrieves all app configurations for a parent.
func (r *appConfigRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.AppConfig, error) {
	var configModels []model.AppConfigModel
	result := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("display_name ASC").
		Find(&configModels)
	if result.Error != nil {
		return nil, result.Error
	}

	configs := make([]*entity.AppConfig, len(configModels))
	for i, cm := range configModels {
		configs[i] = cm.ToEntity()
	}
	return configs, nil
}

// ExistsByParentAndAppID checks whether a configuration exists for the
// parent and app bundle identifier.
func (r *appConfigRepository) ExistsByParentAndAppID(ctx context.Context, parentID uuid.UUID, appID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AppConfigModel{}).
		Where("parent_id = ? AND app_id = ?", parentID, appID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountByParent returns how many configurations a parent has.
func (r *appConfigRepository) CountByParent(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AppConfigModel{}).
		Where("parent_id = ?", parentID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing app configuration.
func (r *appConfigRepository) Update(ctx context.Context, config *entity.AppConfig) error {
	configModel := model.AppConfigFromEntity(config)
	result := r.db.WithContext(ctx).Save(configModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ParentModel represents the parents table in the database.
type ParentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the ParentModel.
func (ParentModel) TableName() string {
	return "parents"
}

// ToEntity converts a ParentModel to a domain Parent entity.
func (m *ParentModel) ToEntity() *entity.Parent {
	return &entity.Parent{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ParentFromEntity creates a ParentModel from a domain Parent entity.
func ParentFromEntity(parent *entity.Parent) *ParentModel {
	return &ParentModel{
		ID:           parent.ID,
		Email:        parent.Email,
		Name:         parent.Name,
		PasswordHash: parent.PasswordHash,
		CreatedAt:    parent.CreatedAt,
		UpdatedAt:    parent.UpdatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ChildModel represents the children table in the database.
type ChildModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ChildModel.
func (ChildModel) TableName() string {
	return "children"
}

// ToEntity converts a ChildModel to a domain Child entity.
func (m *ChildModel) ToEntity() *entity.Child {
	return &entity.Child{
		ID:        m.ID,
		ParentID:  m.ParentID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ChildFromEntity creates a ChildModel from a domain Child entity.
func ChildFromEntity(child *entity.Child) *ChildModel {
	return &ChildModel{
		ID:        child.ID,
		ParentID:  child.ParentID,
		Name:      child.Name,
		CreatedAt: child.CreatedAt,
		UpdatedAt: child.UpdatedAt,
	}
}

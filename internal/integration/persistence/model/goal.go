// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ChildID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title          string          `gorm:"type:varchar(255);not null"`
	TargetCoinz    int             `gorm:"not null"`
	BonusCoinz     int             `gorm:"not null;default:0"`
	EligibleAppIDs JSONStringSlice `gorm:"type:text;not null"`
	Progress       int             `gorm:"not null;default:0"`
	IsCompleted    bool            `gorm:"not null;default:false"`
	StartDate      time.Time       `gorm:"not null"`
	EndDate        time.Time       `gorm:"not null"`
	IsActive       bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:             m.ID,
		ChildID:        m.ChildID,
		Title:          m.Title,
		TargetCoinz:    m.TargetCoinz,
		BonusCoinz:     m.BonusCoinz,
		EligibleAppIDs: []string(m.EligibleAppIDs),
		Progress:       m.Progress,
		IsCompleted:    m.IsCompleted,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:             goal.ID,
		ChildID:        goal.ChildID,
		Title:          goal.Title,
		TargetCoinz:    goal.TargetCoinz,
		BonusCoinz:     goal.BonusCoinz,
		EligibleAppIDs: JSONStringSlice(goal.EligibleAppIDs),
		Progress:       goal.Progress,
		IsCompleted:    goal.IsCompleted,
		StartDate:      goal.StartDate,
		EndDate:        goal.EndDate,
		IsActive:       goal.IsActive,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}

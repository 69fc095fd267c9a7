// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=255"`
	TargetCoinz    int       `json:"target_coinz" binding:"required,gt=0"`
	BonusCoinz     int       `json:"bonus_coinz" binding:"omitempty,gte=0"`
	EligibleAppIDs []string  `json:"eligible_app_ids" binding:"required,min=1"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update. Absent
// fields are left unchanged.
type UpdateGoalRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	TargetCoinz *int       `json:"target_coinz,omitempty" binding:"omitempty,gt=0"`
	BonusCoinz  *int       `json:"bonus_coinz,omitempty" binding:"omitempty,gte=0"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID             string    `json:"id"`
	ChildID        string    `json:"child_id"`
	Title          string    `json:"title"`
	TargetCoinz    int       `json:"target_coinz"`
	BonusCoinz     int       `json:"bonus_coinz"`
	EligibleAppIDs []string  `json:"eligible_app_ids"`
	Progress       int       `json:"progress"`
	IsCompleted    bool      `json:"is_completed"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:             g.ID.String(),
		ChildID:        g.ChildID.String(),
		Title:          g.Title,
		TargetCoinz:    g.TargetCoinz,
		BonusCoinz:     g.BonusCoinz,
		EligibleAppIDs: g.EligibleAppIDs,
		Progress:       g.Progress,
		IsCompleted:    g.IsCompleted,
		StartDate:      g.StartDate,
		EndDate:        g.EndDate,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to its DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}

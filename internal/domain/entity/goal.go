// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a parent-defined multi-day Coinz target tied to specific learning
// apps. Progress accrues from earn events in eligible apps; completion fires
// exactly once and pays BonusCoinz.
type Goal struct {
	ID             uuid.UUID
	ChildID        uuid.UUID
	Title          string
	TargetCoinz    int
	BonusCoinz     int
	EligibleAppIDs []string
	Progress       int
	IsCompleted    bool
	StartDate      time.Time
	EndDate        time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(childID uuid.UUID, title string, targetCoinz, bonusCoinz int, eligibleAppIDs []string, startDate, endDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:             uuid.New(),
		ChildID:        childID,
		Title:          title,
		TargetCoinz:    targetCoinz,
		BonusCoinz:     bonusCoinz,
		EligibleAppIDs: eligibleAppIDs,
		StartDate:      startDate,
		EndDate:        endDate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsExpired reports whether the goal's window has closed.
func (g *Goal) IsExpired(now time.Time) bool {
	return now.After(g.EndDate)
}

// IsEligibleApp reports whether earns from the app count toward this goal.
func (g *Goal) IsEligibleApp(appID string) bool {
	for _, id := range g.EligibleAppIDs {
		if id == appID {
			return true
		}
	}
	return false
}

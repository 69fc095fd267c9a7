// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/application/session"
	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
)

// StartSessionRequest represents the request body for opening a learning
// session.
type StartSessionRequest struct {
	AppID string `json:"app_id" binding:"required"`
}

// TickSessionRequest represents the request body for committing one elapsed
// learning minute.
type TickSessionRequest struct {
	AppID string `json:"app_id" binding:"required"`
}

// EndSessionRequest represents the request body for closing a session.
type EndSessionRequest struct {
	AppID string `json:"app_id" binding:"required"`
}

// RecordLearningTimeRequest reports a batch of measured learning minutes.
type RecordLearningTimeRequest struct {
	AppID   string `json:"app_id" binding:"required"`
	Minutes int    `json:"minutes" binding:"required,gt=0"`
}

// SessionResponse represents an active or just-ended learning session.
type SessionResponse struct {
	ChildID          string    `json:"child_id"`
	AppID            string    `json:"app_id"`
	StartedAt        time.Time `json:"started_at"`
	MinutesCommitted int       `json:"minutes_committed"`
}

// SessionListResponse represents the response for listing active sessions.
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// TickSessionResponse represents the outcome of one committed minute: the
// earn transaction plus any goal completions it triggered.
type TickSessionResponse struct {
	Wallet            WalletResponse        `json:"wallet"`
	Transaction       TransactionResponse   `json:"transaction"`
	CompletedGoals    []GoalResponse        `json:"completed_goals,omitempty"`
	BonusTransactions []TransactionResponse `json:"bonus_transactions,omitempty"`
}

// ToSessionResponse converts a session to its DTO.
func ToSessionResponse(s *session.Session) SessionResponse {
	return SessionResponse{
		ChildID:          s.ChildID.String(),
		AppID:            s.AppID,
		StartedAt:        s.StartedAt,
		MinutesCommitted: s.MinutesCommitted,
	}
}

// ToTickSessionResponse converts a RecordLearningTimeOutput to its DTO.
func ToTickSessionResponse(output *ledger.RecordLearningTimeOutput) TickSessionResponse {
	response := TickSessionResponse{
		Wallet:      ToWalletResponse(output.Wallet),
		Transaction: ToTransactionResponse(output.Transaction),
	}
	for _, g := range output.CompletedGoals {
		response.CompletedGoals = append(response.CompletedGoals, ToGoalResponse(g))
	}
	for _, tx := range output.BonusTransactions {
		response.BonusTransactions = append(response.BonusTransactions, ToTransactionResponse(tx))
	}
	return response
}

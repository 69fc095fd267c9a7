// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aminenidae/braincoinz/internal/application/session"
	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
)

// SessionController handles learning session endpoints. Minutes advance
// through explicit ticks from the time-tracking collaborator, or through the
// batch learning-time endpoint for callers that report measured minutes in
// one shot.
type SessionController struct {
	tracker                   *session.Tracker
	recordLearningTimeUseCase *ledger.RecordLearningTimeUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	tracker *session.Tracker,
	recordLearningTimeUseCase *ledger.RecordLearningTimeUseCase,
) *SessionController {
	return &SessionController{
		tracker:                   tracker,
		recordLearningTimeUseCase: recordLearningTimeUseCase,
	}
}

// RecordTime handles POST /children/:childId/learning-time requests,
// committing a batch of measured learning minutes outside any session.
func (c *SessionController) RecordTime(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.RecordLearningTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChildFields),
		})
		return
	}

	output, err := c.recordLearningTimeUseCase.Execute(ctx.Request.Context(), ledger.RecordLearningTimeInput{
		ParentID: parentID,
		ChildID:  childID,
		AppID:    req.AppID,
		Minutes:  req.Minutes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTickSessionResponse(output))
}

// Start handles POST /children/:childId/sessions requests.
func (c *SessionController) Start(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChildFields),
		})
		return
	}

	s, err := c.tracker.Start(parentID, childID, req.AppID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(s))
}

// Tick handles POST /children/:childId/sessions/tick requests, committing
// one elapsed learning minute.
func (c *SessionController) Tick(ctx *gin.Context) {
	_, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.TickSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChildFields),
		})
		return
	}

	output, err := c.tracker.Tick(ctx.Request.Context(), childID, req.AppID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTickSessionResponse(output))
}

// End handles POST /children/:childId/sessions/end requests. Ending stops
// further ticks; minutes already committed stay in the ledger.
func (c *SessionController) End(ctx *gin.Context) {
	_, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.EndSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChildFields),
		})
		return
	}

	s, err := c.tracker.End(childID, req.AppID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

// List handles GET /children/:childId/sessions requests.
func (c *SessionController) List(ctx *gin.Context) {
	_, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	sessions := c.tracker.Active(childID)
	responses := make([]dto.SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = dto.ToSessionResponse(s)
	}

	ctx.JSON(http.StatusOK, dto.SessionListResponse{Sessions: responses})
}

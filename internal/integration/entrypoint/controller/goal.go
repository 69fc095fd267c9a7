// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/usecase/goal"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	createUseCase *goal.CreateGoalUseCase
	listUseCase   *goal.ListGoalsUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /children/:childId/goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		ParentID:       parentID,
		ChildID:        childID,
		Title:          req.Title,
		TargetCoinz:    req.TargetCoinz,
		BonusCoinz:     req.BonusCoinz,
		EligibleAppIDs: req.EligibleAppIDs,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /children/:childId/goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		ParentID: parentID,
		ChildID:  childID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Update handles PATCH /children/:childId/goals/:goalId requests.
func (c *GoalController) Update(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(ctx.Param("goalId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		ParentID:    parentID,
		ChildID:     childID,
		GoalID:      goalID,
		Title:       req.Title,
		TargetCoinz: req.TargetCoinz,
		BonusCoinz:  req.BonusCoinz,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /children/:childId/goals/:goalId requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(ctx.Param("goalId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		ParentID: parentID,
		ChildID:  childID,
		GoalID:   goalID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aminenidae/braincoinz/internal/application/usecase/purchase"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
)

// PurchaseController handles reward-time purchase endpoints.
type PurchaseController struct {
	checkUseCase    *purchase.CheckPurchaseUseCase
	purchaseUseCase *purchase.PurchaseRewardTimeUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	checkUseCase *purchase.CheckPurchaseUseCase,
	purchaseUseCase *purchase.PurchaseRewardTimeUseCase,
) *PurchaseController {
	return &PurchaseController{
		checkUseCase:    checkUseCase,
		purchaseUseCase: purchaseUseCase,
	}
}

// Check handles POST /children/:childId/purchases/check requests. The check
// is read-only: a denial here is a 200 with allowed=false, not an error.
func (c *PurchaseController) Check(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPurchaseMinutes),
		})
		return
	}

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), purchase.CheckPurchaseInput{
		ParentID: parentID,
		ChildID:  childID,
		AppID:    req.AppID,
		Minutes:  req.Minutes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckPurchaseResponse(output))
}

// Purchase handles POST /children/:childId/purchases requests.
func (c *PurchaseController) Purchase(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPurchaseMinutes),
		})
		return
	}

	output, err := c.purchaseUseCase.Execute(ctx.Request.Context(), purchase.PurchaseRewardTimeInput{
		ParentID: parentID,
		ChildID:  childID,
		AppID:    req.AppID,
		Minutes:  req.Minutes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(output))
}

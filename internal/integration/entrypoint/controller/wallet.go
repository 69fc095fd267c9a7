// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/middleware"
)

// WalletController handles wallet and ledger endpoints.
type WalletController struct {
	getUseCase              *ledger.GetWalletUseCase
	adjustUseCase           *ledger.AdjustBalanceUseCase
	resetUseCase            *ledger.ResetWalletUseCase
	updateSettingsUseCase   *ledger.UpdateWalletSettingsUseCase
	listTransactionsUseCase *ledger.ListTransactionsUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	getUseCase *ledger.GetWalletUseCase,
	adjustUseCase *ledger.AdjustBalanceUseCase,
	resetUseCase *ledger.ResetWalletUseCase,
	updateSettingsUseCase *ledger.UpdateWalletSettingsUseCase,
	listTransactionsUseCase *ledger.ListTransactionsUseCase,
) *WalletController {
	return &WalletController{
		getUseCase:              getUseCase,
		adjustUseCase:           adjustUseCase,
		resetUseCase:            resetUseCase,
		updateSettingsUseCase:   updateSettingsUseCase,
		listTransactionsUseCase: listTransactionsUseCase,
	}
}

// Get handles GET /children/:childId/wallet requests.
func (c *WalletController) Get(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetWalletInput{
		ParentID: parentID,
		ChildID:  childID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletSnapshotResponse(output))
}

// Adjust handles POST /children/:childId/wallet/adjust requests.
func (c *WalletController) Adjust(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.AdjustBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	output, err := c.adjustUseCase.Execute(ctx.Request.Context(), ledger.AdjustBalanceInput{
		ParentID: parentID,
		ChildID:  childID,
		Delta:    req.Delta,
		Type:     entity.TransactionType(req.Type),
		Reason:   req.Reason,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WalletMutationResponse{
		Wallet:      dto.ToWalletResponse(output.Wallet),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	})
}

// Reset handles POST /children/:childId/wallet/reset requests.
func (c *WalletController) Reset(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.ResetWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), ledger.ResetWalletInput{
		ParentID:      parentID,
		ChildID:       childID,
		TargetBalance: req.TargetBalance,
		Reason:        req.Reason,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WalletMutationResponse{
		Wallet:      dto.ToWalletResponse(output.Wallet),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	})
}

// UpdateSettings handles PATCH /children/:childId/wallet requests.
func (c *WalletController) UpdateSettings(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	var req dto.UpdateWalletSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), ledger.UpdateWalletSettingsInput{
		ParentID:                    parentID,
		ChildID:                     childID,
		MinimumDailyLearningMinutes: *req.MinimumDailyLearningMinutes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// ListTransactions handles GET /children/:childId/transactions requests.
func (c *WalletController) ListTransactions(ctx *gin.Context) {
	parentID, childID, ok := parentAndChild(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), ledger.ListTransactionsInput{
		ParentID: parentID,
		ChildID:  childID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Result))
}

// parentAndChild extracts the authenticated parent and the childId path
// parameter, writing the error response itself on failure.
func parentAndChild(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	childID, err := uuid.Parse(ctx.Param("childId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid child ID format",
			Code:  string(domainerror.ErrCodeChildNotFound),
		})
		return uuid.Nil, uuid.Nil, false
	}

	return parentID, childID, true
}

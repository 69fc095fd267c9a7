// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
)

// respondError maps a domain error to an HTTP response. Every usecase error
// carries a typed wrapper with a stable code; anything else is a 500.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authStatusCode(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var childErr *domainerror.ChildError
	if errors.As(err, &childErr) {
		ctx.JSON(childStatusCode(childErr.Code), dto.ErrorResponse{
			Error: childErr.Message,
			Code:  string(childErr.Code),
		})
		return
	}

	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		ctx.JSON(walletStatusCode(walletErr.Code), dto.ErrorResponse{
			Error: walletErr.Message,
			Code:  string(walletErr.Code),
		})
		return
	}

	var purchaseErr *domainerror.PurchaseError
	if errors.As(err, &purchaseErr) {
		ctx.JSON(purchaseStatusCode(purchaseErr.Code), dto.ErrorResponse{
			Error: purchaseErr.Message,
			Code:  string(purchaseErr.Code),
		})
		return
	}

	var appErr *domainerror.AppConfigError
	if errors.As(err, &appErr) {
		ctx.JSON(appConfigStatusCode(appErr.Code), dto.ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(goalStatusCode(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// respondUnauthenticated is the response when the auth middleware did not
// populate the parent identity.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Parent not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

func authStatusCode(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials, domainerror.ErrCodeParentNotFound,
		domainerror.ErrCodeInvalidToken, domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

func childStatusCode(code domainerror.ChildErrorCode) int {
	switch code {
	case domainerror.ErrCodeChildNotFound, domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeChildNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeSessionAlreadyActive:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func walletStatusCode(code domainerror.WalletErrorCode) int {
	switch code {
	case domainerror.ErrCodeWalletNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func purchaseStatusCode(code domainerror.PurchaseErrorCode) int {
	switch code {
	case domainerror.ErrCodeLearningRequirementNotMet,
		domainerror.ErrCodePurchaseInsufficientBalance,
		domainerror.ErrCodeDailyLimitReached,
		domainerror.ErrCodeDailyLimitPartial:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func appConfigStatusCode(code domainerror.AppConfigErrorCode) int {
	switch code {
	case domainerror.ErrCodeAppNotConfigured, domainerror.ErrCodeAppConfigNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAppAlreadyConfigured:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func goalStatusCode(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalCompleted:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

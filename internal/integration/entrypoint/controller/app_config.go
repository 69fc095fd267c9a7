// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/usecase/appconfig"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/middleware"
)

// AppConfigController handles the app registry endpoints.
type AppConfigController struct {
	createUseCase *appconfig.CreateAppUseCase
	updateUseCase *appconfig.UpdateAppUseCase
	listUseCase   *appconfig.ListAppsUseCase
	seedUseCase   *appconfig.SeedDefaultsUseCase
}

// NewAppConfigController creates a new app config controller instance.
func NewAppConfigController(
	createUseCase *appconfig.CreateAppUseCase,
	updateUseCase *appconfig.UpdateAppUseCase,
	listUseCase *appconfig.ListAppsUseCase,
	seedUseCase *appconfig.SeedDefaultsUseCase,
) *AppConfigController {
	return &AppConfigController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		seedUseCase:   seedUseCase,
	}
}

// Create handles POST /apps requests.
func (c *AppConfigController) Create(ctx *gin.Context) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateAppRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAppFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), appconfig.CreateAppInput{
		ParentID:       parentID,
		AppID:          req.AppID,
		DisplayName:    req.DisplayName,
		Category:       entity.AppCategory(req.Category),
		CoinzRate:      req.CoinzRate,
		DailyTimeLimit: req.DailyTimeLimit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAppConfigResponse(output.App))
}

// Update handles PATCH /apps/:id requests.
func (c *AppConfigController) Update(ctx *gin.Context) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	appID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid app config ID format",
			Code:  string(domainerror.ErrCodeAppConfigNotFound),
		})
		return
	}

	var req dto.UpdateAppRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAppFields),
		})
		return
	}

	input := appconfig.UpdateAppInput{
		ParentID:       parentID,
		ID:             appID,
		DisplayName:    req.DisplayName,
		CoinzRate:      req.CoinzRate,
		DailyTimeLimit: req.DailyTimeLimit,
		IsEnabled:      req.IsEnabled,
	}
	if req.Category != nil {
		category := entity.AppCategory(*req.Category)
		input.Category = &category
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppConfigResponse(output.App))
}

// List handles GET /apps requests.
func (c *AppConfigController) List(ctx *gin.Context) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), appconfig.ListAppsInput{ParentID: parentID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppConfigListResponse(output.Apps))
}

// SeedDefaults handles POST /apps/seed requests. Seeding a registry that
// already has entries is a no-op.
func (c *AppConfigController) SeedDefaults(ctx *gin.Context) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.seedUseCase.Execute(ctx.Request.Context(), appconfig.SeedDefaultsInput{ParentID: parentID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppConfigListResponse(output.Seeded))
}

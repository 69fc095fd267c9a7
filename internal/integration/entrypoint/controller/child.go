// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aminenidae/braincoinz/internal/application/usecase/child"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/dto"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/middleware"
)

// ChildController handles child profile endpoints.
type ChildController struct {
	createUseCase *child.CreateChildUseCase
	listUseCase   *child.ListChildrenUseCase
}

// NewChildController creates a new child controller instance.
func NewChildController(
	createUseCase *child.CreateChildUseCase,
	listUseCase *child.ListChildrenUseCase,
) *ChildController {
	return &ChildController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /children requests. The child's wallet is provisioned
// together with the profile.
func (c *ChildController) Create(ctx *gin.Context) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChildFields),
		})
		return
	}

	input := child.CreateChildInput{
		ParentID: parentID,
		Name:     req.Name,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateChildResponse{
		Child:  dto.ToChildResponse(output.Child),
		Wallet: dto.ToWalletResponse(output.Wallet),
	})
}

// List handles GET /children requests.
func (c *ChildController) List(ctx *gin.Context) {
	parentID, ok := middleware.GetParentIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), child.ListChildrenInput{ParentID: parentID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	children := make([]dto.ChildResponse, len(output.Children))
	for i, ch := range output.Children {
		children[i] = dto.ToChildResponse(ch)
	}

	ctx.JSON(http.StatusOK, dto.ChildListResponse{Children: children})
}

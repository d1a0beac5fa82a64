package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/service"
)

// CmsHandler handles the admin CMS editing API: the whole document,
// brands and their category/subcategory trees.
type CmsHandler struct {
	service service.CmsService
}

// NewCmsHandler creates a new CmsHandler
func NewCmsHandler(service service.CmsService) *CmsHandler {
	return &CmsHandler{service: service}
}

// GetState godoc
// @Summary      Read the whole CMS document
// @Tags         cms
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.StateResponse}
// @Router       /cms/state [get]
func (h *CmsHandler) GetState(c *gin.Context) {
	common.SuccessResponse(c, h.service.State(), nil)
}

// ReplaceState godoc
// @Summary      Replace the whole CMS document
// @Tags         cms
// @Accept       json
// @Produce      json
// @Param        request  body  domain.ReplaceStateRequest  true  "New document"
// @Success      200  {object}  common.APIResponse{data=domain.StateResponse}
// @Router       /cms/state [put]
func (h *CmsHandler) ReplaceState(c *gin.Context) {
	var req domain.ReplaceStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.ReplaceState(req.State)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// GetMeta godoc
// @Summary      List editor option sets (templates, devices, countries)
// @Tags         cms
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CmsMetaResponse}
// @Router       /cms/meta [get]
func (h *CmsHandler) GetMeta(c *gin.Context) {
	common.SuccessResponse(c, h.service.Meta(), nil)
}

// ListBrands returns every brand with its trees
func (h *CmsHandler) ListBrands(c *gin.Context) {
	brands, err := h.service.GetBrands()
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, brands, nil)
}

// GetBrand returns one brand with its trees
func (h *CmsHandler) GetBrand(c *gin.Context) {
	brand, err := h.service.GetBrand(c.Param("brandId"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, brand, nil)
}

// UpdateBrand merges a partial brand update
func (h *CmsHandler) UpdateBrand(c *gin.Context) {
	var patch domain.BrandPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	brand, err := h.service.UpdateBrand(c.Param("brandId"), &patch)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, brand, nil)
}

// ========================================
// Brand categories
// ========================================

// CreateCategory adds a category with editor defaults
func (h *CmsHandler) CreateCategory(c *gin.Context) {
	var req domain.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cat, err := h.service.CreateCategory(c.Param("brandId"), &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: cat})
}

// UpdateCategory merges a partial category update
func (h *CmsHandler) UpdateCategory(c *gin.Context) {
	var patch domain.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cat, err := h.service.UpdateCategory(c.Param("brandId"), c.Param("categoryId"), &patch)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, cat, nil)
}

// DeleteCategory removes a category, detaching children and subcategories
func (h *CmsHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Param("brandId"), c.Param("categoryId")); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// MoveCategory swaps a category with its up/down sibling
func (h *CmsHandler) MoveCategory(c *gin.Context) {
	var req domain.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.MoveCategory(c.Param("brandId"), c.Param("categoryId"), req.Dir()); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"moved": true}, nil)
}

// ResolveCategory returns the effective (inheritance-applied) view of a
// category, as the admin preview renders it
func (h *CmsHandler) ResolveCategory(c *gin.Context) {
	eff, err := h.service.ResolveCategory(c.Param("brandId"), c.Param("categoryId"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, eff, nil)
}

// ========================================
// Brand subcategories
// ========================================

// CreateSubcategory adds a subcategory with editor defaults
func (h *CmsHandler) CreateSubcategory(c *gin.Context) {
	var req domain.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sc, err := h.service.CreateSubcategory(c.Param("brandId"), &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: sc})
}

// UpdateSubcategory merges a partial subcategory update
func (h *CmsHandler) UpdateSubcategory(c *gin.Context) {
	var patch domain.SubcategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sc, err := h.service.UpdateSubcategory(c.Param("brandId"), c.Param("subcategoryId"), &patch)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, sc, nil)
}

// DeleteSubcategory removes a subcategory
func (h *CmsHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.service.DeleteSubcategory(c.Param("brandId"), c.Param("subcategoryId")); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// MoveSubcategory swaps a subcategory with its up/down sibling
func (h *CmsHandler) MoveSubcategory(c *gin.Context) {
	var req domain.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.MoveSubcategory(c.Param("brandId"), c.Param("subcategoryId"), req.Dir()); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"moved": true}, nil)
}

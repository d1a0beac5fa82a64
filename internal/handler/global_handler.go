package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/service"
)

// GlobalHandler handles the shared global catalog: global categories,
// global subcategories and the global locale list.
type GlobalHandler struct {
	service service.CmsService
}

// NewGlobalHandler creates a new GlobalHandler
func NewGlobalHandler(service service.CmsService) *GlobalHandler {
	return &GlobalHandler{service: service}
}

// CreateGlobalCategory adds a global category with editor defaults
func (h *GlobalHandler) CreateGlobalCategory(c *gin.Context) {
	var req domain.CreateGlobalCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gc, err := h.service.CreateGlobalCategory(&req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: gc})
}

// UpdateGlobalCategory merges a partial global category update
func (h *GlobalHandler) UpdateGlobalCategory(c *gin.Context) {
	var patch domain.GlobalCategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gc, err := h.service.UpdateGlobalCategory(c.Param("categoryId"), &patch)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gc, nil)
}

// DeleteGlobalCategory removes a global category, detaching dependents
func (h *GlobalHandler) DeleteGlobalCategory(c *gin.Context) {
	if err := h.service.DeleteGlobalCategory(c.Param("categoryId")); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// MoveGlobalCategory swaps a global category with its up/down sibling
func (h *GlobalHandler) MoveGlobalCategory(c *gin.Context) {
	var req domain.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.MoveGlobalCategory(c.Param("categoryId"), req.Dir()); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"moved": true}, nil)
}

// CreateGlobalSubcategory adds a global subcategory with editor defaults
func (h *GlobalHandler) CreateGlobalSubcategory(c *gin.Context) {
	var req domain.CreateGlobalSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gs, err := h.service.CreateGlobalSubcategory(&req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: gs})
}

// UpdateGlobalSubcategory merges a partial global subcategory update
func (h *GlobalHandler) UpdateGlobalSubcategory(c *gin.Context) {
	var patch domain.GlobalSubcategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gs, err := h.service.UpdateGlobalSubcategory(c.Param("subcategoryId"), &patch)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gs, nil)
}

// DeleteGlobalSubcategory removes a global subcategory
func (h *GlobalHandler) DeleteGlobalSubcategory(c *gin.Context) {
	if err := h.service.DeleteGlobalSubcategory(c.Param("subcategoryId")); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// MoveGlobalSubcategory swaps a global subcategory with its up/down sibling
func (h *GlobalHandler) MoveGlobalSubcategory(c *gin.Context) {
	var req domain.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.MoveGlobalSubcategory(c.Param("subcategoryId"), req.Dir()); err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"moved": true}, nil)
}

// SetGlobalLocales replaces the global locale list
func (h *GlobalHandler) SetGlobalLocales(c *gin.Context) {
	var req domain.SetGlobalLocalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	locales, err := h.service.SetGlobalLocales(req.Locales)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"locales": locales}, nil)
}

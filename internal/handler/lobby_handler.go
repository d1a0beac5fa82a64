package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/service"
)

// LobbyHandler handles the public player-facing API
type LobbyHandler struct {
	service service.LobbyService
}

// NewLobbyHandler creates a new LobbyHandler
func NewLobbyHandler(service service.LobbyService) *LobbyHandler {
	return &LobbyHandler{service: service}
}

// targetingContext builds the viewer context from query parameters.
// Absent parameters leave the matching constraint dimensions inactive.
func targetingContext(c *gin.Context) domain.TargetingContext {
	return domain.TargetingContext{
		Device:     c.Query("device"),
		Country:    c.Query("country"),
		Segment:    c.Query("segment"),
		PlayerID:   c.Query("player_id"),
		IsInternal: c.Query("internal") == "true",
	}
}

// GetNav godoc
// @Summary      Brand navigation tree for one viewer
// @Description  Resolved against the global catalog, filtered by visibility and targeting
// @Tags         lobby
// @Produce      json
// @Param        brandId   path   string  true   "Brand id"
// @Param        device    query  string  false  "Viewer device"
// @Param        country   query  string  false  "Viewer country"
// @Param        segment   query  string  false  "Viewer segment"
// @Param        player_id query  string  false  "Viewer player id"
// @Param        locale    query  string  false  "Requested locale, echoed back"
// @Success      200  {object}  common.APIResponse{data=domain.NavResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /lobby/{brandId}/nav [get]
func (h *LobbyHandler) GetNav(c *gin.Context) {
	nav, err := h.service.Nav(c.Request.Context(), c.Param("brandId"), targetingContext(c))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	nav.Locale = c.Query("locale")
	common.SuccessResponse(c, nav, nil)
}

// GetCategory godoc
// @Summary      One resolved category
// @Tags         lobby
// @Produce      json
// @Param        brandId     path  string  true  "Brand id"
// @Param        categoryId  path  string  true  "Category id"
// @Success      200  {object}  common.APIResponse{data=domain.EffectiveCategory}
// @Failure      404  {object}  common.APIResponse
// @Router       /lobby/{brandId}/categories/{categoryId} [get]
func (h *LobbyHandler) GetCategory(c *gin.Context) {
	eff, err := h.service.Category(c.Request.Context(), c.Param("brandId"), c.Param("categoryId"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, eff, nil)
}

// GetHome godoc
// @Summary      The viewer's landing category
// @Tags         lobby
// @Produce      json
// @Param        brandId  path  string  true  "Brand id"
// @Success      200  {object}  common.APIResponse{data=domain.EffectiveCategory}
// @Failure      404  {object}  common.APIResponse
// @Router       /lobby/{brandId}/home [get]
func (h *LobbyHandler) GetHome(c *gin.Context) {
	home, err := h.service.Home(c.Request.Context(), c.Param("brandId"), targetingContext(c))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, home, nil)
}

// GetSubcategoryGames godoc
// @Summary      The games of one subcategory
// @Description  Collection subcategories evaluate their rules against the catalog
// @Tags         lobby
// @Produce      json
// @Param        brandId        path  string  true  "Brand id"
// @Param        subcategoryId  path  string  true  "Subcategory id"
// @Success      200  {object}  common.APIResponse{data=domain.SubcategoryGamesResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /lobby/{brandId}/subcategories/{subcategoryId}/games [get]
func (h *LobbyHandler) GetSubcategoryGames(c *gin.Context) {
	resp, err := h.service.SubcategoryGames(c.Request.Context(), c.Param("brandId"), c.Param("subcategoryId"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

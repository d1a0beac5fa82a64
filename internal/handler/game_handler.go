package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/service"
)

// GameHandler handles the game catalog API
type GameHandler struct {
	games service.GameService
	lobby service.LobbyService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(games service.GameService, lobby service.LobbyService) *GameHandler {
	return &GameHandler{games: games, lobby: lobby}
}

// ListGames returns the whole catalog
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.games.List(c.Request.Context())
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, games, &common.Meta{Total: int64(len(games))})
}

// GetGame returns one catalog record
func (h *GameHandler) GetGame(c *gin.Context) {
	game, err := h.games.Get(c.Param("gameId"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, game, nil)
}

// PreviewCollection evaluates a rule list against the catalog without
// saving anything (the collection editor's live matching count)
func (h *GameHandler) PreviewCollection(c *gin.Context) {
	var req domain.CollectionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.lobby.PreviewCollection(req.Rules)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

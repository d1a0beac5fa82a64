package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/service"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges admin credentials for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Credentials"
// @Success      200  {object}  common.APIResponse{data=domain.LoginResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

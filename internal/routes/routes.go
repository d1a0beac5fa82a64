package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lobbyworks/lobby-cms-backend/internal/handler"
	"github.com/lobbyworks/lobby-cms-backend/internal/middleware"
	"github.com/lobbyworks/lobby-cms-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	cmsHandler *handler.CmsHandler,
	globalHandler *handler.GlobalHandler,
	lobbyHandler *handler.LobbyHandler,
	gameHandler *handler.GameHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Authentication (no auth required)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Admin editing API (admin token required)
	cms := api.Group("/cms", middleware.JWTAuth(jwtManager), middleware.RequireAdmin())
	{
		cms.GET("/state", cmsHandler.GetState)
		cms.PUT("/state", cmsHandler.ReplaceState)
		cms.GET("/meta", cmsHandler.GetMeta)

		cms.GET("/brands", cmsHandler.ListBrands)
		cms.GET("/brands/:brandId", cmsHandler.GetBrand)
		cms.PATCH("/brands/:brandId", cmsHandler.UpdateBrand)

		brand := cms.Group("/brands/:brandId")
		{
			brand.POST("/categories", cmsHandler.CreateCategory)
			brand.PATCH("/categories/:categoryId", cmsHandler.UpdateCategory)
			brand.DELETE("/categories/:categoryId", cmsHandler.DeleteCategory)
			brand.POST("/categories/:categoryId/move", cmsHandler.MoveCategory)
			brand.GET("/categories/:categoryId/resolved", cmsHandler.ResolveCategory)

			brand.POST("/subcategories", cmsHandler.CreateSubcategory)
			brand.PATCH("/subcategories/:subcategoryId", cmsHandler.UpdateSubcategory)
			brand.DELETE("/subcategories/:subcategoryId", cmsHandler.DeleteSubcategory)
			brand.POST("/subcategories/:subcategoryId/move", cmsHandler.MoveSubcategory)
		}

		global := cms.Group("/global")
		{
			global.POST("/categories", globalHandler.CreateGlobalCategory)
			global.PATCH("/categories/:categoryId", globalHandler.UpdateGlobalCategory)
			global.DELETE("/categories/:categoryId", globalHandler.DeleteGlobalCategory)
			global.POST("/categories/:categoryId/move", globalHandler.MoveGlobalCategory)

			global.POST("/subcategories", globalHandler.CreateGlobalSubcategory)
			global.PATCH("/subcategories/:subcategoryId", globalHandler.UpdateGlobalSubcategory)
			global.DELETE("/subcategories/:subcategoryId", globalHandler.DeleteGlobalSubcategory)
			global.POST("/subcategories/:subcategoryId/move", globalHandler.MoveGlobalSubcategory)

			global.PUT("/locales", globalHandler.SetGlobalLocales)
		}

		// Collection rule preview for the admin editor
		cms.POST("/collections/preview", gameHandler.PreviewCollection)
	}

	// Game catalog (public, read-only)
	games := api.Group("/games")
	{
		games.GET("", gameHandler.ListGames)
		games.GET("/:gameId", gameHandler.GetGame)
	}

	// Player-facing lobby API (public)
	lobby := api.Group("/lobby/:brandId")
	{
		lobby.GET("/nav", lobbyHandler.GetNav)
		lobby.GET("/home", lobbyHandler.GetHome)
		lobby.GET("/categories/:categoryId", lobbyHandler.GetCategory)
		lobby.GET("/subcategories/:subcategoryId/games", lobbyHandler.GetSubcategoryGames)
	}
}

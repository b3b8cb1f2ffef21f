package router

import (
	"nutrimatch/internal/middleware"
	"nutrimatch/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations", middleware.AuthMiddleware())
	reco.GET("", handler.Recommend)

	interactions := api.Group("/interactions", middleware.AuthMiddleware())
	interactions.POST("", handler.LogInteraction)
}

func SetProfileRoutes(api *echo.Group, handler *rest.ProfileHandler) {
	profile := api.Group("/profile", middleware.AuthMiddleware())

	profile.GET("/preferences", handler.Preferences)
	profile.GET("/summary", handler.Summary)
	profile.GET("/top-snacks", handler.TopSnacks)
	profile.GET("/activity", handler.RecentActivity)
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для туалетов, поиска и отзывов - под API-ключом
	restrooms := api.Group("/restrooms")
	restrooms.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		restrooms.POST("", h.createRestroom)
		restrooms.POST("/search", h.searchNearby)
		restrooms.GET("/:id", h.getRestroom)
		restrooms.GET("/:id/reviews", h.listReviews)
		restrooms.POST("/:id/reviews", h.submitReview)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

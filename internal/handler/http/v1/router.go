package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Поиск маршрутов — публичный, только чтение
	routes := api.Group("/routes")
	{
		routes.POST("/by-coordinates", h.findRouteByCoordinates)
		routes.POST("/by-names", h.findRouteByNames)
	}

	// Маршруты для управления инцидентами
	incidents := api.Group("/incidents", auth)
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.DELETE("/:id", h.expireIncident)
		incidents.GET("/stats", h.getStats)
	}

	// Типы инцидентов: создание защищено ключом, список публичный
	api.POST("/incident-types", auth, h.createIncidentType)
	api.GET("/incident-types", h.listIncidentTypes)

	// Маршрут для проверки местоположения
	api.POST("/location/check", auth, h.checkLocation)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

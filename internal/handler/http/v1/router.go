package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты платформенного колбэка и настроек трекинга
	location := api.Group("/location")
	{
		location.POST("", h.ingestFix)
		location.POST("/sharing", h.setSharing)
	}

	// Маршруты сообщений об инцидентах
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

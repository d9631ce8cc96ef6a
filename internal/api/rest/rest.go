package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-journal/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check and metrics endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Gas station endpoints (open, the sponsor enforces its own policy)
	gas := router.Group("/gas")
	{
		gas.POST("/sponsor", handler.SponsorTransaction)
		gas.POST("/execute", handler.ExecuteTransaction)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Sponsorship usage (public read access)
		v1.GET("/gas/usage/:address", handler.GetGasUsage)
		v1.GET("/gas/usage/:address/records", handler.ListSponsorshipRecords)

		// Journal endpoints (public read access)
		v1.GET("/constructs/:id", handler.GetConstruct)
		v1.GET("/constructs/:id/shards", handler.ListMemoryShards)

		// Operator endpoints (requires authentication)
		v1.GET("/admin/gas/status", middleware.Auth(authCfg), handler.GetGasStationStatus)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the admin API
func SetupRoutes(
	router *gin.Engine,
	levelHandler *handler.LevelHandler,
	diagnosticsHandler *handler.DiagnosticsHandler,
) {
	router.GET("/health", diagnosticsHandler.Health)

	levelRoutes := router.Group("/levels")
	{
		levelRoutes.GET("/:tag", levelHandler.GetLevel)
		levelRoutes.PUT("/:tag", levelHandler.SetLevel)
		levelRoutes.DELETE("/:tag", levelHandler.DeleteLevel)
	}

	diagnosticsRoutes := router.Group("/diagnostics")
	{
		diagnosticsRoutes.POST("/stack", diagnosticsHandler.Stack)
		diagnosticsRoutes.POST("/threads", diagnosticsHandler.Threads)
		diagnosticsRoutes.POST("/memory", diagnosticsHandler.Memory)
	}
}

// SetupMiddlewares configures global middlewares for the admin API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, clock coreport.TimeProvider, stacks middleware.StackPrinter) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, clock))
	router.Use(middleware.Recovery(logger, stacks))
}

package routes

import (
	"net/http"

	"lye_backend/internal/handlers"
	"lye_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route. The public surface lives at
// the root of the host, without an /api prefix, to stay compatible with
// existing clients.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, handlers.SuccessResponse{
			Success: true,
			Message: "Servidor de investigaciones operativo",
		})
	})

	root := ginRouter.Group("")
	{
		appHandlers.UserHandler.RegisterRoutes(root)
		appHandlers.WorkHandler.RegisterRoutes(root)
		appHandlers.InvestigationHandler.RegisterRoutes(root)
		appHandlers.ReviewHandler.RegisterRoutes(root)
		appHandlers.CategoryHandler.RegisterRoutes(root)
		appHandlers.StatsHandler.RegisterRoutes(root)
	}

	logger.Info("HTTP routes registered")
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/QianfengWen/CSC316/internal/handler"
	"github.com/QianfengWen/CSC316/internal/middleware"
	"github.com/QianfengWen/CSC316/internal/service"
)

// SetupRouter builds the gin engine around the map service. A nil service
// means the dataset failed to load: the map endpoints are simply absent and
// only the health check responds, leaving the rest of the page unaffected.
func SetupRouter(mapService *service.MapService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"map":    mapService != nil,
		})
	})

	if mapService == nil {
		return r
	}

	mapHandler := handler.NewMapHandler(mapService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(600, time.Minute))
	{
		m := api.Group("/map")
		{
			m.GET("/view", mapHandler.GetView)
			m.GET("/summary", mapHandler.GetSummary)
			m.GET("/controls", mapHandler.GetControls)
			m.POST("/filter", mapHandler.SetFilter)
			m.POST("/search", mapHandler.SetSearch)
			m.POST("/mode", mapHandler.SetMode)
			m.POST("/zoom", mapHandler.SetZoom)
			m.POST("/visibility", mapHandler.ReportVisibility)
			m.GET("/clusters/:id/spiderfy", mapHandler.Spiderfy)
		}
	}

	return r
}

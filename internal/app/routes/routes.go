package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/rankfinder/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, rankController *controllers.RankController) {
	// --- Form pages ---
	router.GET("/", rankController.Index)
	router.POST("/", rankController.Index)
	router.POST("/download", rankController.Download)

	// --- JSON API ---
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", rankController.Health)
		v1.GET("/options", rankController.GetOptions)
		v1.POST("/filter", rankController.FilterRanks)
		v1.GET("/results/:id/download", rankController.DownloadResult)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}

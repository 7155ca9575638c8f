package routes

import (
	"net/http"
	"time"

	"nearaid/handlers"
	"nearaid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service directory endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.POST("", hb.AddServiceHandler)
		api.POST("/upload", hb.UploadServicesHandler)
		api.GET("", hb.ListServicesHandler)
		api.GET("/types", hb.ListServiceTypesHandler)
	}
}

// RegisterHelpRoutes registers the help resolution endpoint.
func RegisterHelpRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/help")
	{
		api.POST("", hb.GetHelpHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires up all API routes with shared middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterHelpRoutes(r, hb)
}

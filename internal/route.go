package internal

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ramya-constructions/estate-backend/internal/handler"
	"github.com/ramya-constructions/estate-backend/internal/middleware"
)

type Backend struct {
	R *gin.Engine
}

// Register builds the engine and mounts every manager twice: its public
// routes directly under the manager's name, and its protected routes
// under the same prefix behind the bearer-token middleware.
func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()

	// The public site consumes this API directly from the browser.
	s.R.Use(cors.Default())

	s.R.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Ramya Constructions API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	})
	s.R.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	auth := middleware.AuthRequired(conf.TokenMgr)
	for _, mgr := range registerManagers(conf) {
		group := s.R.Group("/" + mgr.GetName())
		mgr.RegisterPublic(group)

		protected := s.R.Group("/" + mgr.GetName())
		protected.Use(auth)
		mgr.RegisterProtected(protected)
	}

	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s
}

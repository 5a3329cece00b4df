package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"pressroom/internal/shared/middleware"
	"pressroom/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupPostRoutes(v1, c)
		setupAuthorRoutes(v1, c)
	}

	return router
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:slug", c.PostHandler.GetBySlug)
	}

	v1.GET("/tags", c.PostHandler.Tags)
	v1.GET("/categories", c.PostHandler.Categories)
	v1.GET("/report", c.PostHandler.Report)
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:slug", c.AuthorHandler.GetBySlug)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		contentStatus := "ok"
		if _, err := os.Stat(appCtx.Config.Content.Dir); err != nil {
			contentStatus = "unreachable"
			health["status"] = "degraded"
		}

		authorsStatus := "ok"
		if _, err := os.Stat(appCtx.Config.Content.AuthorsDir); err != nil {
			// Missing authors dir degrades resolution but the API still serves.
			authorsStatus = "missing"
		}

		health["services"] = gin.H{
			"content_dir": contentStatus,
			"authors_dir": authorsStatus,
		}

		statusCode := http.StatusOK
		if contentStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// One shared limiter so a client's budget spans every resource
	// route instead of resetting per group.
	rateLimit := middleware.RateLimit(c.Config.RateLimit)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))
		api.GET("/db-check", databaseCheckHandler(c))

		api.GET("/user", rateLimit, middleware.Auth(c.JWTManager), c.UserHandler.Me)

		setupAuthorRoutes(api, c, rateLimit)
		setupBookRoutes(api, c, rateLimit)
	}

	return router
}

func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container, rateLimit gin.HandlerFunc) {
	authors := api.Group("/authors")
	authors.Use(rateLimit)
	{
		authors.GET("", c.AuthorHandler.Index)
		authors.POST("", c.AuthorHandler.Store)
		authors.GET("/:id", c.AuthorHandler.Show)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.PATCH("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Destroy)
		authors.GET("/:id/books", c.AuthorHandler.Books)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container, rateLimit gin.HandlerFunc) {
	books := api.Group("/books")
	books.Use(rateLimit)
	{
		books.GET("", c.BookHandler.Index)
		books.POST("", c.BookHandler.Store)
		books.GET("/:id", c.BookHandler.Show)
		books.PUT("/:id", c.BookHandler.Update)
		books.PATCH("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Destroy)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"app":         c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func databaseCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "database unreachable",
			})
			return
		}

		stat := c.DB.Pool.Stat()
		ctx.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"total_conns":      stat.TotalConns(),
			"idle_conns":       stat.IdleConns(),
			"acquired_conns":   stat.AcquiredConns(),
			"max_conns":        stat.MaxConns(),
			"new_conns_count":  stat.NewConnsCount(),
			"acquire_count":    stat.AcquireCount(),
			"acquire_duration": stat.AcquireDuration().String(),
		})
	}
}

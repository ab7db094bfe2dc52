package main

import (
	"net/http"
	"time"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupBlogRoutes(api, c)
		setupAdminRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	blogs := api.Group("/blogs")
	{
		// Public routes
		blogs.GET("", c.BlogHandler.List)
		blogs.GET("/featured", c.BlogHandler.Featured)

		// Privileged routes. Static /admin and /featured segments take
		// priority over the :slug wildcard.
		blogs.GET("/admin/all", auth, middleware.Authorize(middleware.PermBlogRead), c.BlogHandler.ListAll)
		blogs.GET("/admin/:id", auth, middleware.Authorize(middleware.PermBlogRead), c.BlogHandler.GetByID)
		blogs.POST("", auth, middleware.Authorize(middleware.PermBlogWrite), c.BlogHandler.Create)
		blogs.PUT("/:id", auth, middleware.Authorize(middleware.PermBlogWrite), c.BlogHandler.Update)
		blogs.PATCH("/:id/publish", auth, middleware.Authorize(middleware.PermBlogPublish), c.BlogHandler.Publish)
		blogs.DELETE("/:id", auth, middleware.Authorize(middleware.PermBlogDelete), c.BlogHandler.Delete)

		blogs.GET("/:slug", c.BlogHandler.GetBySlug)
	}
}

func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	admin := api.Group("/admin")
	{
		admin.POST("/login", c.AdminHandler.Login)
		admin.POST("/register", c.AdminHandler.Register)

		admin.GET("/me", auth, c.AdminHandler.GetMe)
		admin.PUT("/profile", auth, c.AdminHandler.UpdateProfile)
		admin.PUT("/change-password", auth, c.AdminHandler.ChangePassword)
	}
}

func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	uploads := api.Group("/uploads")
	{
		uploads.POST("/cloudinary/sign", auth, c.UploadHandler.Sign)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "Server is running"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = "Server is running, database unreachable"
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now(),
		})
	}
}

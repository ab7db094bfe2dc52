package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"blog-backend/internal/domains/admin"
	adminHandler "blog-backend/internal/domains/admin/handler"
	adminRepo "blog-backend/internal/domains/admin/repository"
	adminService "blog-backend/internal/domains/admin/service"
	"blog-backend/internal/domains/blog"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
	"blog-backend/internal/domains/upload"
	uploadHandler "blog-backend/internal/domains/upload/handler"
)

// Container holds the application's dependency graph, built once at
// startup in dependency order: config, infrastructure, repositories,
// services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager

	AdminRepo admin.Repository
	BlogRepo  blog.Repository

	AdminService admin.Service
	BlogService  blog.Service

	AdminHandler  *adminHandler.AdminHandler
	BlogHandler   *blogHandler.BlogHandler
	UploadHandler *uploadHandler.UploadHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryDays)*24*time.Hour)

	c.AdminRepo = adminRepo.NewPostgresRepository(db.Pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(db.Pool)

	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)

	devMode := cfg.IsDevelopment()
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService, devMode)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService, devMode)
	c.UploadHandler = uploadHandler.NewUploadHandler(upload.NewSigner(cfg.Cloudinary))

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}

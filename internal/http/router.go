package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/database"
)

// RouterConfig holds all dependencies for building the HTTP router.
type RouterConfig struct {
	Database       *database.Database
	SessionManager *auth.SessionManager
	BcryptCost     int
	TemplatesPath  string
	StaticPath     string
	CSRFSecret     []byte
	SecureCookies  bool
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	router.Use(cfg.SessionManager.SessionLoadSave())

	// Load HTML templates
	tmpl := template.Must(template.ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Landing page and register/login/logout
	authController := auth.NewController(cfg.Database, cfg.SessionManager, cfg.BcryptCost)
	authController.RegisterRoutes(router)

	// Everything below requires a logged-in user
	booksController := NewBooksController(cfg.Database, cfg.SessionManager)
	favoritesController := NewFavoritesController(cfg.Database, cfg.SessionManager)

	protected := router.Group("/", cfg.SessionManager.RequireUser())
	protected.GET("/books", booksController.List)
	protected.POST("/books/add", booksController.Add)
	protected.GET("/books/:id", booksController.Details)
	protected.GET("/books/:id/edit", booksController.EditForm)
	protected.POST("/books/:id/update", booksController.Update)
	protected.GET("/books/:id/delete", booksController.Delete)
	protected.GET("/books/:id/favorite", favoritesController.Favorite)
	protected.GET("/books/:id/unfavorite", favoritesController.Unfavorite)
	protected.GET("/favorites", favoritesController.FavoritesPage)

	return router
}

package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"imagehost/internal/config"
	"imagehost/internal/handlers"
	"imagehost/internal/services"
)

// SetupRouter builds the gin engine for one worker. Routing is a fixed
// per-method table: exact matches for the health check and the upload
// collection, a wildcard for deletion so the filename arrives as a path
// parameter. Trailing-slash and case redirects are disabled, so anything
// outside the table (including a known path with the wrong method) falls
// through to the JSON 404 handler.
func SetupRouter(cfg *config.Config, logger *log.Logger) (*gin.Engine, error) {
	store, err := services.NewImageStore(cfg)
	if err != nil {
		return nil, err
	}
	h := handlers.NewImageHandler(cfg, store, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.GET("/", h.Health)
	router.GET("/upload/", h.ListImages)
	router.POST("/upload/", h.UploadImage)
	router.DELETE("/upload/*filename", h.DeleteImage)

	router.NoRoute(h.NotFound)

	return router, nil
}

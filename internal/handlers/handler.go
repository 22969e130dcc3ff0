package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"imagehost/internal/config"
	"imagehost/internal/models"
	"imagehost/internal/services"
)

// ImageHandler serves the upload API. Each worker builds its own instance;
// workers share nothing in memory, only the images directory on disk.
type ImageHandler struct {
	cfg   *config.Config
	store *services.ImageStore
	log   *log.Logger
}

func NewImageHandler(cfg *config.Config, store *services.ImageStore, logger *log.Logger) *ImageHandler {
	return &ImageHandler{cfg: cfg, store: store, log: logger}
}

// jsonError writes the uniform error body and logs it: 5xx as server
// errors, everything else as client errors.
func (h *ImageHandler) jsonError(c *gin.Context, statusCode int, message string) {
	if statusCode >= 500 {
		h.log.Printf("ERROR %s %s -> %d: %s", c.Request.Method, c.Request.URL.Path, statusCode, message)
	} else {
		h.log.Printf("WARN %s %s -> %d: %s", c.Request.Method, c.Request.URL.Path, statusCode, message)
	}
	c.JSON(statusCode, models.ErrorResponse{Detail: message})
}

// apiError relays a typed error's status code and message verbatim;
// anything else is an unexpected failure and becomes a 500.
func (h *ImageHandler) apiError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		h.jsonError(c, apiErr.StatusCode, apiErr.Message)
		return
	}
	h.jsonError(c, http.StatusInternalServerError, models.ErrInternal(err).Message)
}

// NotFound answers every request that matches no registered route.
func (h *ImageHandler) NotFound(c *gin.Context) {
	h.jsonError(c, http.StatusNotFound, "Not found")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"imagehost/internal/models"
)

// Health answers the health check with a fixed welcome message, independent
// of server state.
func (h *ImageHandler) Health(c *gin.Context) {
	h.log.Printf("INFO Healthcheck endpoint hit: /")
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Welcome to the Image Hosting Server"})
}

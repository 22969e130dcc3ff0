package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"imagehost/internal/models"
)

const (
	// formOverhead is the slack on top of MAX_SIZE allowed for multipart
	// boundaries and part headers when capping the request body.
	formOverhead = 1 << 20

	// maxParseMemory caps how much of the form is held in memory while
	// parsing; larger parts spill to temporary files.
	maxParseMemory = 32 << 20
)

// ListImages returns the filenames currently in the images directory.
func (h *ImageHandler) ListImages(c *gin.Context) {
	files, err := h.store.List()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		h.jsonError(c, http.StatusInternalServerError, "Images directory not found.")
		return
	case errors.Is(err, fs.ErrPermission):
		h.jsonError(c, http.StatusInternalServerError, "Permission denied.")
		return
	case err != nil:
		h.apiError(c, err)
		return
	}
	if len(files) == 0 {
		h.jsonError(c, http.StatusNotFound, "No images found.")
		return
	}

	h.log.Printf("INFO Returned list of %d uploaded images.", len(files))
	c.JSON(http.StatusOK, files)
}

// UploadImage accepts a multipart form carrying exactly one file part,
// validates it and persists it under a fresh name.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		h.jsonError(c, http.StatusBadRequest, "Bad request: Expected 'multipart/form-data'.")
		return
	}

	// Cap the body before parsing so an oversized upload fails early
	// instead of being spooled to disk in full.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxFileSize+formOverhead)

	if err := c.Request.ParseMultipartForm(maxParseMemory); err != nil {
		if isBodyTooLarge(err) {
			h.apiError(c, models.ErrFileTooLarge(h.cfg.MaxFileSize))
			return
		}
		h.jsonError(c, http.StatusBadRequest, "Bad request: Malformed multipart form data.")
		return
	}

	var files []*multipart.FileHeader
	for _, headers := range c.Request.MultipartForm.File {
		files = append(files, headers...)
	}
	if len(files) == 0 {
		h.apiError(c, models.ErrNoFile)
		return
	}
	if len(files) > 1 {
		h.apiError(c, models.ErrMultipleFiles)
		return
	}

	img, err := h.store.Save(files[0])
	if err != nil {
		h.apiError(c, err)
		return
	}

	h.log.Printf("INFO File '%s' uploaded successfully.", img.Filename)
	c.JSON(http.StatusOK, models.UploadResponse{Filename: img.Filename, URL: img.URL})
}

// DeleteImage removes the file named by the path suffix after /upload/.
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filename"), "/")
	if name == "" {
		h.apiError(c, models.ErrFilenameMissing)
		return
	}

	path, err := h.store.Delete(name)
	if err != nil {
		h.apiError(c, err)
		return
	}

	message := fmt.Sprintf("File '%s' deleted successfully.", path)
	h.log.Printf("INFO %s", message)
	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

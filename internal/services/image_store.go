package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"imagehost/internal/config"
	"imagehost/internal/models"
)

// ImageStore performs the filesystem work behind the upload API: listing,
// persisting and deleting images under the configured directory. The
// directory itself is the only record of which images exist.
type ImageStore struct {
	cfg *config.Config
}

// NewImageStore creates the images directory if it does not exist yet.
func NewImageStore(cfg *config.Config) (*ImageStore, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating images directory %s: %w", cfg.ImagesDir, err)
	}
	return &ImageStore{cfg: cfg}, nil
}

// List returns the names of the regular files in the images directory.
// OS errors are returned as-is so the handler can map them.
func (s *ImageStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.ImagesDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Save validates and persists one uploaded file. The stored name is a fresh
// UUID with the original extension, so concurrent workers never collide on
// a name. Validation failures come back as *models.APIError.
func (s *ImageStore) Save(fh *multipart.FileHeader) (*models.UploadedImage, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !s.cfg.IsSupportedFormat(ext) {
		return nil, models.ErrUnsupportedFormat
	}
	if fh.Size > s.cfg.MaxFileSize {
		return nil, models.ErrFileTooLarge(s.cfg.MaxFileSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, models.ErrInternal(err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dstPath := filepath.Join(s.cfg.ImagesDir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, models.ErrInternal(err)
	}
	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dstPath) // do not leave a partial file behind
		return nil, models.ErrInternal(err)
	}

	return &models.UploadedImage{
		Filename: name,
		URL:      "/upload/" + name,
		Size:     written,
	}, nil
}

// Delete removes the named image and returns its resolved path. The name is
// checked against the supported formats and canonicalized before any
// filesystem call; a path escaping the images directory is rejected.
func (s *ImageStore) Delete(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !s.cfg.IsSupportedFormat(ext) {
		return "", models.ErrUnsupportedFormat
	}

	base, err := filepath.Abs(s.cfg.ImagesDir)
	if err != nil {
		return "", models.ErrInternal(err)
	}
	path := filepath.Join(base, name)
	if !strings.HasPrefix(path, base+string(os.PathSeparator)) {
		return "", models.ErrInvalidFilename
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", models.ErrFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return "", models.ErrPermissionDenied
	case err != nil:
		return "", models.ErrInternal(err)
	case !info.Mode().IsRegular():
		return "", models.ErrFileNotFound
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", models.ErrPermissionDenied
		}
		return "", models.ErrInternal(err)
	}
	return path, nil
}

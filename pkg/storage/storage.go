package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var (
	// ErrNotImage is returned for uploads whose content type is not image/*.
	ErrNotImage = errors.New("File should be an image file")
	// ErrTooLarge is returned for uploads above the configured size limit.
	ErrTooLarge = errors.New("file size exceeds maximum allowed size")
)

// Storage keeps uploaded images on the local filesystem.
type Storage struct {
	basePath    string
	maxFileSize int64
}

// NewStorage creates the base directory if needed.
func NewStorage(basePath string, maxFileSize int64) (*Storage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Storage{
		basePath:    basePath,
		maxFileSize: maxFileSize,
	}, nil
}

// BasePath is the directory files are written to and served from.
func (s *Storage) BasePath() string { return s.basePath }

// SaveImage stores an uploaded image under a random name and returns that name.
// A 300x300 thumbnail is written next to it; thumbnail failures are only logged.
func (s *Storage) SaveImage(file *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return "", ErrTooLarge
	}

	fileName := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	filePath := filepath.Join(s.basePath, fileName)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := writeFile(filePath, src); err != nil {
		return "", err
	}

	if err := s.createThumbnail(filePath); err != nil {
		slog.Warn("failed to create thumbnail", "file", fileName, "error", err)
	}

	return fileName, nil
}

// writeFile copies src to path; on failure nothing is left at path.
func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to copy file: %w", err)
	}
	return nil
}

func (s *Storage) createThumbnail(filePath string) error {
	img, err := imaging.Open(filePath)
	if err != nil {
		return err
	}

	thumbnail := imaging.Fill(img, 300, 300, imaging.Center, imaging.Lanczos)
	return imaging.Save(thumbnail, ThumbnailPath(filePath), imaging.JPEGQuality(85))
}

// ThumbnailPath returns the thumbnail location for a stored file.
func ThumbnailPath(filePath string) string {
	return strings.TrimSuffix(filePath, filepath.Ext(filePath)) + "_thumb.jpg"
}

// DeleteFile removes a stored file and its thumbnail.
func (s *Storage) DeleteFile(fileName string) error {
	filePath := filepath.Join(s.basePath, filepath.Base(fileName))
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := os.Remove(ThumbnailPath(filePath)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to delete thumbnail", "file", fileName, "error", err)
	}

	return nil
}

package services

import (
	"errors"
	"log/slog"
	"mime/multipart"

	"github.com/funfungun/1-seven-0/pkg/storage"
)

// MaxImagesPerUpload bounds the files accepted in one upload request.
const MaxImagesPerUpload = 10

type ImageService interface {
	// Upload stores every file and returns their public URLs in order.
	Upload(files []*multipart.FileHeader) ([]string, error)
}

type imageService struct {
	storage *storage.Storage
	baseURL string
}

// NewImageService serves URLs as baseURL + "/images/" + file name.
func NewImageService(st *storage.Storage, baseURL string) ImageService {
	return &imageService{storage: st, baseURL: baseURL}
}

func (s *imageService) Upload(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, newError(ErrValidation, "File error")
	}
	if len(files) > MaxImagesPerUpload {
		return nil, newError(ErrValidation, "at most %d files can be uploaded at once", MaxImagesPerUpload)
	}

	names := make([]string, 0, len(files))
	urls := make([]string, 0, len(files))
	for _, f := range files {
		name, err := s.storage.SaveImage(f)
		if err != nil {
			s.rollback(names)
			if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) {
				return nil, newError(ErrValidation, "%s", err.Error())
			}
			return nil, err
		}
		names = append(names, name)
		urls = append(urls, s.baseURL+"/images/"+name)
	}

	slog.Info("images uploaded", "count", len(urls))
	return urls, nil
}

// rollback removes files saved earlier in a failed batch.
func (s *imageService) rollback(names []string) {
	for _, n := range names {
		if err := s.storage.DeleteFile(n); err != nil {
			slog.Warn("failed to remove partial upload", "file", n, "error", err)
		}
	}
}

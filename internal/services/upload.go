package services

//go:generate mockgen -source=upload.go -destination=mock_upload.go -package=services

import (
	"context"
	"io"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/storage"
)

// FileStorage persists uploaded file contents under a name.
type FileStorage interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// UploadService stores uploaded media files.
type UploadService struct {
	storage FileStorage
}

// NewUploadService creates a new UploadService instance.
func NewUploadService(fs FileStorage) *UploadService {
	return &UploadService{storage: fs}
}

// Store writes r under the base name of filename and returns that name.
func (svc *UploadService) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name, err := storage.CleanFilename(filename)
	if err != nil {
		log.Infow("rejected upload filename", "filename", filename)
		return "", err
	}

	location, err := svc.storage.Save(ctx, name, r)
	if err != nil {
		log.Errorw("failed to store upload", "filename", name, "err", err)
		return "", err
	}

	log.Infow("upload stored", "filename", name, "location", location)
	return name, nil
}

package handlers

//go:generate mockgen -source=upload.go -destination=mock_upload.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/models"
	"github.com/sbilibin2017/freaksearch-chat/internal/storage"
)

const maxMultipartMemory = 32 << 20

// Uploader stores an uploaded file and returns the name it was stored under.
type Uploader interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
}

// NewUploadHandler returns an HTTP handler for media uploads.
// @Summary Upload a media file
// @Description Stores the file under its original base name. An existing file with the same name is replaced.
// @Tags media
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} models.MessageResponse "File uploaded"
// @Failure 400 {object} models.ErrorResponse "Missing file or invalid filename"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /upload-media [post]
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded.")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded.")
			return
		}
		defer file.Close()

		name, err := svc.Store(r.Context(), header.Filename, file)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidFilename) {
				writeError(w, http.StatusBadRequest, "Invalid filename.")
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to store upload", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to upload file.")
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("File '%s' uploaded successfully.", name),
		})
	}
}

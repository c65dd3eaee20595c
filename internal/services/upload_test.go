package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/freaksearch-chat/internal/services"
	"github.com/sbilibin2017/freaksearch-chat/internal/storage"
)

func TestUploadService_Store(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		stored    string
		saveErr   error
		wantName  string
		wantErr   error
		wantAnErr bool
	}{
		{name: "success", filename: "photo.png", stored: "photo.png", wantName: "photo.png"},
		{name: "path reduced to base name", filename: "../../photo.png", stored: "photo.png", wantName: "photo.png"},
		{name: "invalid filename", filename: "..", wantErr: storage.ErrInvalidFilename},
		{name: "storage error", filename: "photo.png", stored: "photo.png", saveErr: errors.New("disk full"), wantAnErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fs := services.NewMockFileStorage(ctrl)
			if tt.stored != "" {
				fs.EXPECT().
					Save(gomock.Any(), tt.stored, gomock.Any()).
					Return("uploads/"+tt.stored, tt.saveErr)
			}

			svc := services.NewUploadService(fs)
			name, err := svc.Store(context.Background(), tt.filename, strings.NewReader("data"))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, name)
			}
		})
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/freaksearch-chat/internal/models"
	"github.com/sbilibin2017/freaksearch-chat/internal/services"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		reqBody      models.AuthRequest
		rawBody      string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			reqBody: models.AuthRequest{Username: "alice", Password: "pw1"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Login successful!"},
		},
		{
			name:    "wrong password",
			reqBody: models.AuthRequest{Username: "alice", Password: "nope"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Authenticate(gomock.Any(), "alice", "nope").Return(services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"detail": "Invalid username or password."},
		},
		{
			name:    "unknown user",
			reqBody: models.AuthRequest{Username: "ghost", Password: "pw1"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Authenticate(gomock.Any(), "ghost", "pw1").Return(services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"detail": "Invalid username or password."},
		},
		{
			name:    "store unavailable",
			reqBody: models.AuthRequest{Username: "alice", Password: "pw1"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").
					Return(fmt.Errorf("%w: timeout", services.ErrStoreUnavailable))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"detail": "Database connection failed."},
		},
		{
			name:    "unexpected error",
			reqBody: models.AuthRequest{Username: "alice", Password: "pw1"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").Return(errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"detail": "Internal server error."},
		},
		{
			name:         "invalid json",
			rawBody:      "not json",
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "Invalid request body."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			body := []byte(tt.rawBody)
			if tt.rawBody == "" {
				body, _ = json.Marshal(tt.reqBody)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(body))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

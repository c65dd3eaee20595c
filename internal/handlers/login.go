package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/models"
	"github.com/sbilibin2017/freaksearch-chat/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Authenticate(ctx context.Context, username, password string) error
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks the username and password against the stored credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AuthRequest true "Login Request"
// @Success 200 {object} models.MessageResponse "Login successful"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 422 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Credential store failure"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AuthRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
			return
		}

		err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "Invalid username or password.")
			case errors.Is(err, services.ErrStoreUnavailable):
				logger.FromContext(r.Context()).Errorw("database connection failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Database connection failed.")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error.")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: "Login successful!",
		})
	}
}

package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/models"
	"github.com/sbilibin2017/freaksearch-chat/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.AuthRequest true "User registration request"
// @Success 201 {object} models.MessageResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Username already exists"
// @Failure 422 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Credential store failure"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AuthRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username already exists.")
			case errors.Is(err, services.ErrStoreUnavailable):
				logger.FromContext(r.Context()).Errorw("database connection failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Database connection failed.")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to register user: %v", err))
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.MessageResponse{
			Message: fmt.Sprintf("User '%s' registered successfully.", req.Username),
		})
	}
}

package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/models"
	"github.com/sbilibin2017/freaksearch-chat/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) error
}

// PasswordHasher hashes passwords and verifies them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if user != nil {
		log.Infow("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			log.Infow("user already exists", "username", username)
			return ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return err
	}

	log.Infow("user registered", "username", username)
	return nil
}

// Authenticate checks the password of an existing user.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if user == nil {
		log.Infow("user does not exist", "username", username)
		return ErrUserDoesNotExist
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		log.Infow("invalid credentials", "username", username)
		return ErrInvalidCredentials
	}

	return nil
}

package service

import (
	"errors"
	"time"

	"portal/internal/crypto"
	"portal/internal/repository"
	"portal/internal/token"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(username, password string) (string, error) // Returns signed session token
}

type authService struct {
	repo   repository.UserRepository
	codec  *token.Codec
	logger *zap.Logger
}

func NewAuthService(repo repository.UserRepository, codec *token.Codec, logger *zap.Logger) AuthService {
	return &authService{repo: repo, codec: codec, logger: logger}
}

// Login verifies the credentials and mints a session token carrying the
// user's current role set. Every failure path collapses to ErrInvalidCredentials
// so a caller cannot tell a missing user from a wrong password.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Error("User lookup failed", zap.Error(err))
		}
		return "", ErrInvalidCredentials
	}

	ok, err := crypto.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		s.logger.Error("Stored password hash unreadable",
			zap.String("username", username), zap.Error(err))
		return "", ErrInvalidCredentials
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	tokenString, err := s.codec.Encode(user.Username, user.Roles, time.Now())
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return "", ErrInvalidCredentials
	}

	s.logger.Info("User logged in successfully.", zap.String("username", user.Username))
	return tokenString, nil
}

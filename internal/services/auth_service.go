// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brewline/pos-backend/internal/config"
	"github.com/brewline/pos-backend/internal/models"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

type AuthService struct {
	sessions *store.SessionStore
	cfg      *config.Config
}

type LoginRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Role string `json:"role" validate:"required,pos_role"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(sessions *store.SessionStore, cfg *config.Config) *AuthService {
	return &AuthService{
		sessions: sessions,
		cfg:      cfg,
	}
}

// Login installs a session for the given display name and role and issues
// an access token. The only validation is a non-empty name and a known
// role; there are no accounts and no passwords.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("name must not be blank")
	}

	user := s.sessions.Login(name, models.UserRole(req.Role))

	accessToken, err := utils.GenerateJWT(user.ID, user.Name, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in")

	return &AuthResponse{
		User:        &user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

// Logout tears the session down. Idempotent; logging out an already
// ended session is not an error.
func (s *AuthService) Logout(userID uuid.UUID) {
	s.sessions.Logout(userID)
	logrus.WithField("user_id", userID).Info("User logged out")
}

// GetSession returns the live session identity for the id, or
// store.ErrSessionNotFound if it was logged out.
func (s *AuthService) GetSession(userID uuid.UUID) (*models.User, error) {
	user, err := s.sessions.Get(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

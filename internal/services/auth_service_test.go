// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewline/pos-backend/internal/config"
	"github.com/brewline/pos-backend/internal/models"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

func authFixture() (*AuthService, *store.SessionStore) {
	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenTTL: 12,
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	sessions := store.NewSessionStore()
	return NewAuthService(sessions, cfg), sessions
}

func TestAuthLogin(t *testing.T) {
	svc, sessions := authFixture()

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Role: "cashier"})
	require.NoError(t, err)

	assert.Equal(t, "Alex", resp.User.Name)
	assert.Equal(t, models.UserRoleCashier, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)
	assert.Equal(t, 1, sessions.Count())

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
	assert.Equal(t, "cashier", claims.Role)
}

func TestAuthLoginTrimsName(t *testing.T) {
	svc, _ := authFixture()

	resp, err := svc.Login(&LoginRequest{Name: "  Alex  ", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "Alex", resp.User.Name)
}

func TestAuthLoginRejectsBlankName(t *testing.T) {
	svc, sessions := authFixture()

	_, err := svc.Login(&LoginRequest{Name: "   ", Role: "cashier"})
	assert.Error(t, err)
	assert.Equal(t, 0, sessions.Count())
}

func TestAuthLoginRejectsUnknownRole(t *testing.T) {
	svc, sessions := authFixture()

	_, err := svc.Login(&LoginRequest{Name: "Alex", Role: "manager"})
	assert.Error(t, err)
	assert.Equal(t, 0, sessions.Count())
}

func TestAuthLogout(t *testing.T) {
	svc, sessions := authFixture()

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Role: "cashier"})
	require.NoError(t, err)

	svc.Logout(resp.User.ID)
	assert.Equal(t, 0, sessions.Count())

	_, err = svc.GetSession(resp.User.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// Logging out again is fine.
	svc.Logout(resp.User.ID)
}

func TestAuthGetSession(t *testing.T) {
	svc, _ := authFixture()

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Role: "admin"})
	require.NoError(t, err)

	user, err := svc.GetSession(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
	assert.True(t, user.IsAdmin())
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktime-th/analytics-backend-go/internal/domain/auth"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAdminToken(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	token, expiresAt, err := svc.GenerateAdminToken("admin-1", "admin@example.com", auth.RoleSuperAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	isAdmin, _ := decoded.Get("is_admin")
	assert.Equal(t, true, isAdmin)
	role, _ := decoded.Get("role")
	assert.Equal(t, "super_admin", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateEmployeeToken(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	token, _, err := svc.GenerateEmployeeToken("emp-1", "Somchai P.")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	isAdmin, _ := decoded.Get("is_admin")
	assert.Equal(t, false, isAdmin)
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	token, _, err := svc.GenerateAdminToken("admin-1", "admin@example.com", auth.RoleAdmin)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}

//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/admin", m.RequireAdmin(), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"subject": p.Subject})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAdminRouter(t, svc)

	adminToken, err := svc.GenerateToken("front-desk", jwt.RoleAdmin)
	require.NoError(t, err)
	guestToken, err := svc.GenerateToken("someone", "guest")
	require.NoError(t, err)
	expiredToken, err := jwt.NewService("test-secret", -time.Minute).GenerateToken("front-desk", jwt.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		expectCode int
		expectMsg  string
	}{
		{name: "no token", token: "", expectCode: http.StatusUnauthorized, expectMsg: "Access token required"},
		{name: "garbage token", token: "abc.def.ghi", expectCode: http.StatusUnauthorized, expectMsg: "Invalid or expired token"},
		{name: "expired token", token: expiredToken, expectCode: http.StatusUnauthorized, expectMsg: "Invalid or expired token"},
		{name: "non-admin role", token: guestToken, expectCode: http.StatusForbidden, expectMsg: "Insufficient permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, tt.token)
			httptest.AssertErrorResponse(t, w, tt.expectCode, tt.expectMsg)
		})
	}

	t.Run("admin via bearer header", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, adminToken)

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "front-desk", body["subject"])
	})

	t.Run("admin via cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: adminToken}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/admin", nil, cookies, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bearer header wins over a stale cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "stale"}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/admin", nil, cookies, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

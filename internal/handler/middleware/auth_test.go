//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorsync/internal/domain/user"
	"mentorsync/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func performRoleRequest(t *testing.T, actorRole user.Role, allowed ...user.Role) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	m := middleware.NewAuthMiddleware(nil)
	router.GET("/guarded",
		func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			c.Set("user_role", actorRole)
		},
		m.RequireRole(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		actorRole  user.Role
		allowed    []user.Role
		expectCode int
	}{
		{
			name:       "matching role passes",
			actorRole:  user.RoleAccUser,
			allowed:    []user.Role{user.RoleAccUser},
			expectCode: http.StatusOK,
		},
		{
			name:       "mentor cannot use an account holder route",
			actorRole:  user.RoleMentor,
			allowed:    []user.Role{user.RoleAccUser},
			expectCode: http.StatusForbidden,
		},
		{
			name:       "account holder cannot use a mentor route",
			actorRole:  user.RoleAccUser,
			allowed:    []user.Role{user.RoleMentor},
			expectCode: http.StatusForbidden,
		},
		{
			name:       "admin passes any gate",
			actorRole:  user.RoleAdmin,
			allowed:    []user.Role{user.RoleMentor},
			expectCode: http.StatusOK,
		},
		{
			name:       "one of several allowed roles",
			actorRole:  user.RoleMentor,
			allowed:    []user.Role{user.RoleAccUser, user.RoleMentor},
			expectCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRoleRequest(t, tt.actorRole, tt.allowed...)
			assert.Equal(t, tt.expectCode, w.Code)
		})
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := middleware.NewAuthMiddleware(nil)
	router.GET("/guarded", m.RequireRole(user.RoleAccUser), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	manager := session.NewManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)

	r := gin.New()
	r.Use(ResolveSession(manager))
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		sess, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"user": sess.Username})
	})
	r.GET("/waiter-only", RequireRoles(models.RoleWaiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/customer-only", RequireRoles(models.RoleCustomer, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, manager
}

func login(t *testing.T, manager *session.Manager, role models.Role) string {
	t.Helper()
	id, err := manager.Create(context.Background(), session.Session{
		Token: "tok", Username: "Test User", Role: role,
	})
	require.NoError(t, err)
	return id
}

func redirectOf(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Redirect
}

func TestRequireAuthWithoutSession(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", redirectOf(t, w.Body.Bytes()))
}

func TestRequireAuthWithStaleSessionID(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(SessionHeader, "expired-or-bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWithSession(t *testing.T) {
	r, manager := newGuardedRouter(t)
	id := login(t, manager, models.RoleCustomer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(SessionHeader, id)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test User")
}

func TestRequireRolesWrongRole(t *testing.T) {
	r, manager := newGuardedRouter(t)
	id := login(t, manager, models.RoleCustomer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/waiter-only", nil)
	req.Header.Set(SessionHeader, id)
	r.ServeHTTP(w, req)

	// Authenticated but not allowed: back to the landing page.
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/", redirectOf(t, w.Body.Bytes()))
}

func TestRequireRolesMatchingRole(t *testing.T) {
	r, manager := newGuardedRouter(t)

	waiterID := login(t, manager, models.RoleWaiter)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/waiter-only", nil)
	req.Header.Set(SessionHeader, waiterID)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	adminID := login(t, manager, models.RoleAdmin)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/customer-only", nil)
	req.Header.Set(SessionHeader, adminID)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesUnauthenticated(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer-only", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", redirectOf(t, w.Body.Bytes()))
}

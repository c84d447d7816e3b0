package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

type fakeValidator struct {
	token string
	user  *models.User
}

func (f *fakeValidator) ValidateToken(tokenString string) (*models.TokenInfo, *models.User, error) {
	if tokenString != f.token {
		return nil, nil, errors.New("invalid token")
	}
	return &models.TokenInfo{UserID: f.user.ID, Email: f.user.Email}, f.user, nil
}

type fakeAPIKeys struct {
	key  string
	user *models.User
}

func (f *fakeAPIKeys) ValidateAPIKey(key string) (*models.User, error) {
	if key != f.key {
		return nil, errors.New("invalid API key")
	}
	return f.user, nil
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "auth_type": c.GetString("auth_type")})
	})
	r.GET("/protected", handlers...)
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestAuthMiddlewareChain(t *testing.T) {
	user := &models.User{ID: "u1", Email: "demo@example.com"}
	admin := &models.User{ID: "admin", Email: "admin@example.com", IsAdmin: true}

	apiKeys := NewAPIKeyMiddleware(&fakeAPIKeys{key: "ac_valid", user: admin})
	bearer := NewBearerTokenMiddleware(&fakeValidator{token: "good-token", user: user})

	tests := []struct {
		name   string
		header string
		query  string
		admin  bool
		want   int
	}{
		{name: "no credentials", want: http.StatusUnauthorized},
		{name: "valid bearer", header: "Bearer good-token", want: http.StatusOK},
		{name: "invalid bearer", header: "Bearer bad-token", want: http.StatusUnauthorized},
		{name: "unknown scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "query token", query: "?access_token=good-token", want: http.StatusOK},
		{name: "valid api key", header: "ApiKey ac_valid", want: http.StatusOK},
		{name: "invalid api key", header: "ApiKey nope", want: http.StatusUnauthorized},
		{name: "empty api key", header: "ApiKey  ", want: http.StatusUnauthorized},
		{name: "admin route with user", header: "Bearer good-token", admin: true, want: http.StatusForbidden},
		{name: "admin route with admin key", header: "ApiKey ac_valid", admin: true, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := []gin.HandlerFunc{apiKeys.APIKeyAuthMiddleware(), bearer.BearerTokenAuthMiddleware()}
			if tt.admin {
				chain = append(chain, RequireAdmin())
			}
			r := newTestRouter(chain...)

			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRecoveryReturns500(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if w.Body.String() != `{"error":"Internal server error"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

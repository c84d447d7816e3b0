package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetupRouterRoutes(t *testing.T) {
	r := SetupRouter(&Services{}, "/autocontent-api")

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health is public", http.MethodGet, "/api/v1/health", http.StatusOK},
		{"content requires auth", http.MethodGet, "/api/v1/content", http.StatusUnauthorized},
		{"dashboard requires auth", http.MethodGet, "/api/v1/dashboard", http.StatusUnauthorized},
		{"reset requires auth", http.MethodPost, "/api/v1/auth/reset", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/v1/matches", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.want)
			}
		})
	}
}

func TestSetupRouterRegistersEveryGroup(t *testing.T) {
	r := SetupRouter(&Services{}, "")

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/auth/signup",
		"GET /api/v1/auth/me",
		"POST /api/v1/content",
		"GET /api/v1/content/export/:filename",
		"POST /api/v1/automation/run",
		"PUT /api/v1/automation",
		"POST /api/v1/publish",
		"DELETE /api/v1/schedule/:id",
		"PUT /api/v1/settings",
		"POST /api/v1/accounts/:platform/connect",
		"GET /api/v1/activity/stream",
		"POST /api/v1/api-key/generate",
		"GET /swagger/*any",
	} {
		if !registered[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

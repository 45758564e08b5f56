package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name string
		ctx  context.Context
		want int
	}{
		{"no identity", context.Background(), http.StatusUnauthorized},
		{"wrong role", WithIdentity(context.Background(), uuid.New(), "mother"), http.StatusForbidden},
		{"allowed role", WithIdentity(context.Background(), uuid.New(), "midwife"), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			RequireMidwife(ok).ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestWithIdentity(t *testing.T) {
	id := uuid.New()
	ctx := WithIdentity(context.Background(), id, "moh")

	if got, ok := GetUserIDFromContext(ctx); !ok || got != id {
		t.Errorf("GetUserIDFromContext() = %v, %v", got, ok)
	}
	if got, ok := GetRoleFromContext(ctx); !ok || got != "moh" {
		t.Errorf("GetRoleFromContext() = %q, %v", got, ok)
	}
}

func TestCORSPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/mothers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	NewCORSMiddleware("http://localhost:5173").Handle(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

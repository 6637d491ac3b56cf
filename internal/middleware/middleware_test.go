package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/auth/authtest"
	"github.com/BruksfildServices01/hotel-services/internal/config"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(sessions *auth.Manager) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())

	whoami := func(c *gin.Context) {
		if sess := Session(c); sess != nil {
			c.JSON(http.StatusOK, gin.H{"account_id": sess.AccountID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"account_id": nil})
	}

	r.GET("/private", AuthMiddleware(sessions), whoami)
	r.GET("/public", OptionalAuth(sessions), whoami)
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	sessions := auth.NewManager(&config.Config{JWTSecret: "s", SessionTTL: time.Hour}, authtest.NewMemoryStore())
	sess, err := sessions.Issue(context.Background(), &models.Account{ID: 7, Role: role.Guest})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := newEngine(sessions)

	if w := do(r, "/private", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
	if w := do(r, "/private", "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for bad token, got %d", w.Code)
	}

	w := do(r, "/private", sess.Token)
	if w.Code != http.StatusOK || w.Body.String() != `{"account_id":7}` {
		t.Errorf("Unexpected response %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected a request id header")
	}

	_ = sessions.Revoke(context.Background(), sess)
	if w := do(r, "/private", sess.Token); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 after revoke, got %d", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	sessions := auth.NewManager(&config.Config{JWTSecret: "s", SessionTTL: time.Hour}, authtest.NewMemoryStore())
	r := newEngine(sessions)

	w := do(r, "/public", "garbage")
	if w.Code != http.StatusOK || w.Body.String() != `{"account_id":null}` {
		t.Errorf("Expected anonymous access, got %d %s", w.Code, w.Body.String())
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		origin      string
		wantAllow   string
		credentials string
	}{
		{"wildcard", []string{"*"}, "https://app.example", "*", ""},
		{"listed", []string{"https://app.example"}, "https://app.example", "https://app.example", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.origins))
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != tt.credentials {
				t.Errorf("Allow-Credentials = %q, want %q", got, tt.credentials)
			}
		})
	}
}

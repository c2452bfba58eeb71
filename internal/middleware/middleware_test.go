package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Nhongkham198/SGdelivery/internal/auth"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/owner/ping", AuthMiddleware(), RequireOwner(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func TestMissingAuthorizationHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/owner/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/owner/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestValidTokenPasses(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := auth.GenerateToken("owner-1", "owner@example.com", auth.RoleOwner)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/owner/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNonOwnerRoleIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := auth.GenerateToken("user-1", "user@example.com", "CUSTOMER")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/owner/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

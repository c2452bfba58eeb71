package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nhongkham198/SGdelivery/internal/auth"
	"github.com/Nhongkham198/SGdelivery/internal/ingest"
	"github.com/Nhongkham198/SGdelivery/internal/menu"
	"github.com/Nhongkham198/SGdelivery/internal/order"
)

type emptyLoader struct{}

func (emptyLoader) Load(_ context.Context) ingest.MenuData {
	return ingest.MenuData{Items: []ingest.MenuItem{}}
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	menuService := menu.NewService(emptyLoader{}, time.Hour)
	orderService := order.NewService(order.NewInMemoryRepository(), menuService, nil)
	authService := auth.NewService(auth.NewInMemoryOwnerRepository())

	return New(
		menu.NewHandler(menuService),
		order.NewHandler(orderService),
		auth.NewHandler(authService),
	)
}

func TestHealthCheck(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenuEndpointServesEmptySentinel(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", body)
	}
}

func TestOwnerRoutesRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/owner/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

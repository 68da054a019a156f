package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ezrarag/Stamped-in-style/internal/auth"
	"github.com/ezrarag/Stamped-in-style/internal/cart"
	"github.com/ezrarag/Stamped-in-style/internal/curated"
	"github.com/ezrarag/Stamped-in-style/internal/llm"
	"github.com/ezrarag/Stamped-in-style/internal/places"
	"github.com/ezrarag/Stamped-in-style/internal/plans"
	"github.com/ezrarag/Stamped-in-style/internal/submissions"
	"github.com/ezrarag/Stamped-in-style/internal/wizard"
)

type stubPlaces struct{}

func (stubPlaces) Predict(ctx context.Context, query string) ([]places.Prediction, error) {
	return nil, nil
}

func (stubPlaces) Details(ctx context.Context, placeID string) (*places.Details, error) {
	return nil, nil
}

type stubLLM struct{}

func (stubLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	return "{}", nil
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	stores := func(sessionID string) *cart.Store {
		return cart.NewStore(cart.NewMemoryBackend())
	}

	deps := Deps{
		Auth:        auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository())),
		Cart:        cart.NewHandler(stores),
		Wizard:      wizard.NewHandler(wizard.NewRegistry(stubPlaces{}, time.Millisecond), stores),
		AI:          llm.NewHandler(llm.NewService(stubLLM{})),
		Submissions: submissions.NewHandler(nil),
		Curated:     curated.NewHandler(nil, nil),
		Plans:       plans.NewHandler(nil),
	}

	return New([]string{"http://localhost:3000"}, deps)
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

func TestFeaturedDestinations(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/destinations/featured", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Paris") {
		t.Fatalf("expected featured destinations in body, got %s", w.Body.String())
	}
}

func TestCartRequiresSessionHeader(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without X-Session-ID, got %d", w.Code)
	}
}

func TestAdminRoutesNeedAuth(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/trip-submissions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

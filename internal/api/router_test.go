package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/pkg/config"
)

type routerStubBackend struct {
	ports.Backend
	identity *domain.Identity
}

func (s *routerStubBackend) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	return s.identity, nil
}

type testRouterEnv struct {
	e     *echo.Echo
	codec *cookie.Codec
}

func newTestRouter(identity *domain.Identity) *testRouterEnv {
	cfg := &config.Config{
		Env:          "test",
		CookieSecret: "test-secret",
	}
	backend := &routerStubBackend{identity: identity}
	e := NewRouter(RouterConfig{
		Config: cfg,
		NewBackend: func(bearer string) ports.Backend {
			return backend
		},
		Log: zerolog.Nop(),
	})
	return &testRouterEnv{e: e, codec: cookie.NewCodec(cfg.CookieSecret, false)}
}

func (env *testRouterEnv) do(t *testing.T, req *http.Request, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	if authenticated {
		ck, err := env.codec.Encode(cookie.BearerCookie, "Bearer tok", cookie.Options{HTTPOnly: true})
		if err != nil {
			t.Fatalf("encode bearer: %v", err)
		}
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AnonymousDashboardRedirectsToLogin(t *testing.T) {
	env := newTestRouter(nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/dashboard", nil), false)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRouter_NonAdminOnAdminRouteRedirectsToDashboard(t *testing.T) {
	env := newTestRouter(&domain.Identity{
		ID:       "u1",
		Username: "alice",
		Roles:    []string{domain.RoleUser},
	})

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/admin/assets", nil), true)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestRouter_HeisterCannotDeleteHeist(t *testing.T) {
	env := newTestRouter(&domain.Identity{
		ID:    "u2",
		Roles: []string{domain.RoleUser, domain.RoleHeister},
	})

	rec := env.do(t, httptest.NewRequest(http.MethodPost, "/map/p1/heist/h1/delete", nil), true)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestRouter_LivenessIsPublic(t *testing.T) {
	env := newTestRouter(nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/healthz", nil), false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	env := newTestRouter(nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil), false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

// stubBackend implements only what the scope builder touches; everything
// else panics through the embedded nil interface.
type stubBackend struct {
	ports.Backend
	bearer        string
	currentUserFn func(ctx context.Context) (*domain.Identity, error)
}

func (s *stubBackend) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	return s.currentUserFn(ctx)
}

func scopeConfig(codec *cookie.Codec, backend *stubBackend) ScopeConfig {
	return ScopeConfig{
		Codec:    codec,
		Sessions: session.NewStore(codec),
		NewBackend: func(bearer string) ports.Backend {
			backend.bearer = bearer
			return backend
		},
		Log: zerolog.Nop(),
	}
}

func runScope(t *testing.T, cfg ScopeConfig, req *http.Request) *Scope {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *Scope
	mw := BuildScope(cfg)
	handler := mw(func(c echo.Context) error {
		got = RequestScope(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got == nil {
		t.Fatalf("scope not built")
	}
	return got
}

func TestBuildScope_Anonymous(t *testing.T) {
	codec := cookie.NewCodec("test-secret", false)
	backend := &stubBackend{currentUserFn: func(ctx context.Context) (*domain.Identity, error) {
		t.Fatalf("CurrentUser must not be called without a bearer")
		return nil, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")

	scope := runScope(t, scopeConfig(codec, backend), req)
	if scope.User != nil {
		t.Fatalf("expected nil identity")
	}
	if scope.Locale != locale.FrFR {
		t.Fatalf("expected negotiated fr-FR, got %q", scope.Locale)
	}
	if scope.UseDarkMode {
		t.Fatalf("dark mode defaults to off")
	}
	if backend.bearer != "" {
		t.Fatalf("anonymous request must bind an anonymous client")
	}
}

func TestBuildScope_Authenticated(t *testing.T) {
	codec := cookie.NewCodec("test-secret", false)
	want := &domain.Identity{ID: "u1", Username: "alice", Roles: []string{domain.RoleUser}}
	backend := &stubBackend{currentUserFn: func(ctx context.Context) (*domain.Identity, error) {
		return want, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	bearerCk, err := codec.Encode(cookie.BearerCookie, "Bearer tok", cookie.Options{HTTPOnly: true, MaxAge: cookie.BearerMaxAge})
	if err != nil {
		t.Fatalf("encode bearer: %v", err)
	}
	req.AddCookie(bearerCk)

	darkCk, err := codec.Encode(cookie.DarkModeCookie, "true", cookie.Options{})
	if err != nil {
		t.Fatalf("encode dark mode: %v", err)
	}
	req.AddCookie(darkCk)

	scope := runScope(t, scopeConfig(codec, backend), req)
	if scope.User != want {
		t.Fatalf("expected resolved identity, got %+v", scope.User)
	}
	if !scope.UseDarkMode {
		t.Fatalf("expected dark mode on")
	}
	if backend.bearer != "Bearer tok" {
		t.Fatalf("client not bound to bearer, got %q", backend.bearer)
	}
}

func TestBuildScope_BackendFailureYieldsAnonymous(t *testing.T) {
	codec := cookie.NewCodec("test-secret", false)
	backend := &stubBackend{currentUserFn: func(ctx context.Context) (*domain.Identity, error) {
		return nil, errors.New("token expired")
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	bearerCk, err := codec.Encode(cookie.BearerCookie, "Bearer stale", cookie.Options{HTTPOnly: true})
	if err != nil {
		t.Fatalf("encode bearer: %v", err)
	}
	req.AddCookie(bearerCk)

	scope := runScope(t, scopeConfig(codec, backend), req)
	if scope.User != nil {
		t.Fatalf("backend failure must resolve to nil identity, got %+v", scope.User)
	}
}

func TestBuildScope_LocaleCookieWinsOverHeader(t *testing.T) {
	codec := cookie.NewCodec("test-secret", false)
	backend := &stubBackend{currentUserFn: func(ctx context.Context) (*domain.Identity, error) {
		return nil, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	localeCk, err := codec.Encode(cookie.LocaleCookie, "en-GB", cookie.Options{HTTPOnly: true})
	if err != nil {
		t.Fatalf("encode locale: %v", err)
	}
	req.AddCookie(localeCk)

	scope := runScope(t, scopeConfig(codec, backend), req)
	if scope.Locale != locale.EnGB {
		t.Fatalf("cookie locale must win, got %q", scope.Locale)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/core/domain"
)

func TestHasRole(t *testing.T) {
	user := &domain.Identity{ID: "u1", Roles: []string{domain.RoleUser, domain.RoleHeister}}

	cases := []struct {
		name     string
		identity *domain.Identity
		required []string
		want     bool
	}{
		{"nil identity", nil, []string{domain.RoleUser}, false},
		{"empty roles", &domain.Identity{ID: "u2", Roles: nil}, []string{domain.RoleUser}, false},
		{"single match", user, []string{domain.RoleUser}, true},
		{"any-match", user, []string{domain.RoleAdmin, domain.RoleHeister}, true},
		{"no intersection", user, []string{domain.RoleAdmin, domain.RoleContractor}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasRole(tc.identity, tc.required...); got != tc.want {
				t.Fatalf("HasRole = %v, want %v", got, tc.want)
			}
		})
	}
}

func gateContext(t *testing.T, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(scopeKey, &Scope{User: identity})
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := gateContext(t, &domain.Identity{Roles: []string{domain.RoleHeister}})

	called := false
	mw := RequireRole("/login", domain.RoleHeister)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_DeniesAnonymous(t *testing.T) {
	c, rec := gateContext(t, nil)

	mw := RequireUser()
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireAdmin_RedirectsToDashboard(t *testing.T) {
	c, rec := gateContext(t, &domain.Identity{Roles: []string{domain.RoleUser}})

	mw := RequireAdmin()
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestRequireRole_MissingScope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireUser()
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 without scope, got %d", rec.Code)
	}
}

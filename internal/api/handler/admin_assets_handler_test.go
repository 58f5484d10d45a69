package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

func TestAdminAssetsDelete_SuccessFlashesToList(t *testing.T) {
	backend := &stubBackend{
		deleteAssetFn: func(ctx context.Context, id string) error {
			if id != "a1" {
				t.Fatalf("wrong id forwarded: %q", id)
			}
			return nil
		},
	}
	env := newTestEnv(backend)
	h := NewAdminAssetsHandler(env.sessions)

	req := formRequest("/admin/assets/a1/delete", nil)
	rec, err := env.run(t, req, map[string]string{"id": "a1"}, h.Delete)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/assets" {
		t.Fatalf("expected redirect to the list, got %q", loc)
	}
	msg := flashedMessage(t, env, rec)
	if msg == nil || msg.Type != domain.FlashSuccess {
		t.Fatalf("expected success flash, got %+v", msg)
	}
}

func TestAdminAssetsDelete_NotFoundRedirectsToEditWithFlash(t *testing.T) {
	backend := &stubBackend{
		deleteAssetFn: func(ctx context.Context, id string) error {
			return apiError(http.StatusNotFound, "Asset not found.")
		},
	}
	env := newTestEnv(backend)
	h := NewAdminAssetsHandler(env.sessions)

	req := formRequest("/admin/assets/a1/delete", nil)
	rec, err := env.run(t, req, map[string]string{"id": "a1"}, h.Delete)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/assets/a1/edit" {
		t.Fatalf("expected redirect back to the edit page, got %q", loc)
	}
	msg := flashedMessage(t, env, rec)
	if msg == nil || msg.Type != domain.FlashError {
		t.Fatalf("expected error flash, got %+v", msg)
	}
	if want := locale.T(locale.EnGB, locale.MsgNotFound); msg.Content != want {
		t.Fatalf("expected localized not-found message %q, got %q", want, msg.Content)
	}
}

func TestAdminAssetsDelete_ServerErrorReRaises(t *testing.T) {
	backend := &stubBackend{
		deleteAssetFn: func(ctx context.Context, id string) error {
			return apiError(http.StatusInternalServerError, "boom")
		},
	}
	env := newTestEnv(backend)
	h := NewAdminAssetsHandler(env.sessions)

	req := formRequest("/admin/assets/a1/delete", nil)
	rec, err := env.run(t, req, map[string]string{"id": "a1"}, h.Delete)
	if err == nil {
		t.Fatalf("a 500 from the backend must re-raise, not flash")
	}
	if msg := flashedMessage(t, env, rec); msg != nil {
		t.Fatalf("no flash on re-raised errors, got %+v", msg)
	}
}

func TestAdminAssetsEditForm_NotFoundIs404(t *testing.T) {
	backend := &stubBackend{
		getAssetFn: func(ctx context.Context, id string) (*domain.Asset, error) {
			return nil, apiError(http.StatusNotFound, "Asset not found.")
		},
	}
	env := newTestEnv(backend)
	h := NewAdminAssetsHandler(env.sessions)

	req := formRequest("/admin/assets/nope/edit", nil)
	_, err := env.run(t, req, map[string]string{"id": "nope"}, h.EditForm)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected an echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", httpErr.Code)
	}
	if want := locale.T(locale.EnGB, locale.MsgNotFound); httpErr.Message != want {
		t.Fatalf("expected localized message %q, got %v", want, httpErr.Message)
	}
}

func TestAdminAssetsEdit_UpdatesAndFlashesSaved(t *testing.T) {
	var got ports.AssetInput
	backend := &stubBackend{
		updateAssetFn: func(ctx context.Context, id string, input ports.AssetInput) error {
			got = input
			return nil
		},
	}
	env := newTestEnv(backend)
	h := NewAdminAssetsHandler(env.sessions)

	req := formRequest("/admin/assets/a1/edit", url.Values{
		"name":         {"Crowbar"},
		"price":        {"12.5"},
		"type":         {"equipment"},
		"max_quantity": {"3"},
		"team_asset":   {"true"},
	})
	rec, err := env.run(t, req, map[string]string{"id": "a1"}, h.Edit)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/admin/assets/a1/edit" {
		t.Fatalf("expected redirect back to edit, got %q", loc)
	}
	if got.Name != "Crowbar" || got.Price != 12.5 || got.MaxQuantity != 3 || !got.TeamAsset {
		t.Fatalf("form values not forwarded: %+v", got)
	}
	msg := flashedMessage(t, env, rec)
	if msg == nil || msg.Type != domain.FlashSuccess {
		t.Fatalf("expected saved flash, got %+v", msg)
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

// PreferencesHandler persists the locale and dark-mode choices as cookies.
type PreferencesHandler struct {
	codec    *cookie.Codec
	sessions *session.Store
}

func NewPreferencesHandler(codec *cookie.Codec, sessions *session.Store) *PreferencesHandler {
	return &PreferencesHandler{codec: codec, sessions: sessions}
}

type preferencesForm struct {
	Locale   string `form:"locale" validate:"required,oneof=en-GB fr-FR"`
	DarkMode string `form:"dark_mode"`
	Redirect string `form:"redirect"`
}

func (h *PreferencesHandler) Update(c echo.Context) error {
	var form preferencesForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, redirectTarget(form.Redirect), domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	localeCk, err := h.codec.Encode(cookie.LocaleCookie, form.Locale, cookie.Options{HTTPOnly: true})
	if err != nil {
		return err
	}
	c.SetCookie(localeCk)

	dark := "false"
	if form.DarkMode == "true" {
		dark = "true"
	}
	// Readable by client-side code, so deliberately not HTTP-only.
	darkCk, err := h.codec.Encode(cookie.DarkModeCookie, dark, cookie.Options{})
	if err != nil {
		return err
	}
	c.SetCookie(darkCk)

	// The confirmation is translated into the locale just chosen, not the
	// one the request came in with.
	chosen, _ := locale.Parse(form.Locale)
	return flashRedirect(c, h.sessions, redirectTarget(form.Redirect), domain.FlashMessage{
		Content: locale.T(chosen, locale.MsgPreferencesUpdated),
		Type:    domain.FlashSuccess,
	})
}

func redirectTarget(raw string) string {
	// Only same-site absolute paths; anything else falls back to the
	// dashboard to keep the redirect un-spoofable.
	if len(raw) > 1 && raw[0] == '/' && raw[1] != '/' {
		return raw
	}
	return "/dashboard"
}

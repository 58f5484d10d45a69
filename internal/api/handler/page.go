package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/metrics"
	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/render"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

// expectedStatuses are the backend failures handlers convert into a flash
// message. Anything outside this set re-raises to the top-level error
// handler and surfaces as the generic error page.
var expectedStatuses = []int{
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusUnprocessableEntity,
}

// renderPage renders a template with the request scope's view state. Any
// pending flash is consumed here, and the cleared session committed, so a
// message shows on exactly one page view.
func renderPage(c echo.Context, sessions *session.Store, name string, data any) error {
	page := render.Page{Data: data}

	if sc := middleware.RequestScope(c); sc != nil {
		page.User = sc.User
		page.Locale = sc.Locale
		page.DarkMode = sc.UseDarkMode
		if msg, ok := sc.Session.Pop(); ok {
			page.Flash = &msg
		}
		if sc.Session.Dirty() {
			ck, err := sessions.Commit(sc.Session)
			if err != nil {
				return err
			}
			c.SetCookie(ck)
		}
	}

	return c.Render(http.StatusOK, name, page)
}

// flashRedirect stages a flash message and issues a 303 to target.
func flashRedirect(c echo.Context, sessions *session.Store, target string, msg domain.FlashMessage) error {
	if sc := middleware.RequestScope(c); sc != nil {
		sc.Session.Flash(msg)
		metrics.FlashMessagesTotal.WithLabelValues(string(msg.Type)).Inc()
		ck, err := sessions.Commit(sc.Session)
		if err != nil {
			return err
		}
		c.SetCookie(ck)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// requestLocale returns the scope locale, defaulting when the scope is
// missing (error paths only).
func requestLocale(c echo.Context) locale.Locale {
	if sc := middleware.RequestScope(c); sc != nil {
		return sc.Locale
	}
	return locale.Default()
}

// flashExpected handles an anticipated backend failure: when err carries one
// of the expected statuses it flashes the backend's message (or the fallback
// translation) and redirects to target, returning handled=true. Unexpected
// errors return handled=false so the caller re-raises them.
func flashExpected(c echo.Context, sessions *session.Store, err error, target string, fallback locale.MessageKey) (error, bool) {
	apiErr, ok := graphql.AsAPIError(err)
	if !ok || !graphql.HasAnyStatus(apiErr, expectedStatuses...) {
		return nil, false
	}

	msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
	if msg == "" {
		msg = locale.T(requestLocale(c), fallback)
	}
	return flashRedirect(c, sessions, target, domain.FlashMessage{Content: msg, Type: domain.FlashError}), true
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/render"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

type errorPage struct {
	Code    int
	Message string
}

// NewHTTPErrorHandler returns the top-level error handler. Everything the
// route handlers did not convert into a flash lands here: echo's own errors
// keep their status, a backend 404 renders as not-found, and anything else
// logs and renders the generic 500 page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		page := render.Page{Data: errorPage{Code: code, Message: msg}}
		if sc := middleware.RequestScope(c); sc != nil {
			page.User = sc.User
			page.Locale = sc.Locale
			page.DarkMode = sc.UseDarkMode
		} else {
			page.Locale = locale.Default()
		}

		if rerr := c.Render(code, "error.html", page); rerr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	loc := locale.Default()
	if sc := middleware.RequestScope(c); sc != nil {
		loc = sc.Locale
	}

	if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
		return http.StatusNotFound, locale.T(loc, locale.MsgNotFound)
	}

	// Unexpected error: log the real cause, render a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, locale.T(loc, locale.MsgOperationFailed)
}

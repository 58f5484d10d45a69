package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

// MapHandler serves a map place and the heist membership actions on it.
type MapHandler struct {
	sessions *session.Store
}

func NewMapHandler(sessions *session.Store) *MapHandler {
	return &MapHandler{sessions: sessions}
}

// Place renders a location and its scheduled heists. A backend error whose
// path names the place itself renders as a localized 404 rather than a
// flash: there is no prior page to send the user back to.
func (h *MapHandler) Place(c echo.Context) error {
	sc := middleware.RequestScope(c)

	place, err := sc.Client.Place(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok {
			if graphql.HasPathError(apiErr, "place") || graphql.HasStatus(apiErr, http.StatusNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgPlaceNotFound))
			}
		}
		return err
	}

	return renderPage(c, h.sessions, "place.html", place)
}

func (h *MapHandler) placePath(c echo.Context) string {
	return "/map/" + c.Param("placeId")
}

// Join adds the current heister to a heist's crew.
func (h *MapHandler) Join(c echo.Context) error {
	sc := middleware.RequestScope(c)

	if err := sc.Client.JoinHeist(c.Request().Context(), c.Param("heistId")); err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, h.placePath(c), locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}
	return flashRedirect(c, h.sessions, h.placePath(c), successFlash(c, locale.MsgHeistJoined))
}

// Leave removes the current heister from a heist's crew.
func (h *MapHandler) Leave(c echo.Context) error {
	sc := middleware.RequestScope(c)

	if err := sc.Client.LeaveHeist(c.Request().Context(), c.Param("heistId")); err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, h.placePath(c), locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}
	return flashRedirect(c, h.sessions, h.placePath(c), successFlash(c, locale.MsgHeistLeft))
}

// Delete cancels a heist. Gated on ROLE_CONTRACTOR by the router; the
// backend still checks the contractor owns the heist.
func (h *MapHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)

	if err := sc.Client.DeleteHeist(c.Request().Context(), c.Param("heistId")); err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasPathError(apiErr, "heist") {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		if redirect, handled := flashExpected(c, h.sessions, err, h.placePath(c), locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}
	return flashRedirect(c, h.sessions, h.placePath(c), successFlash(c, locale.MsgHeistDeleted))
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/session"
)

// DashboardHandler renders the authenticated landing page. The route is
// gated on ROLE_USER by the router, so the scope user is always set here.
type DashboardHandler struct {
	sessions *session.Store
}

func NewDashboardHandler(sessions *session.Store) *DashboardHandler {
	return &DashboardHandler{sessions: sessions}
}

func (h *DashboardHandler) Show(c echo.Context) error {
	return renderPage(c, h.sessions, "dashboard.html", nil)
}

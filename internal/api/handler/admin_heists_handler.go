package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

const heistsBase = "/admin/heists"

type AdminHeistsHandler struct {
	sessions *session.Store
}

func NewAdminHeistsHandler(sessions *session.Store) *AdminHeistsHandler {
	return &AdminHeistsHandler{sessions: sessions}
}

func (h *AdminHeistsHandler) List(c echo.Context) error {
	sc := middleware.RequestScope(c)

	heists, err := sc.Client.ListHeists(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]adminListRow, 0, len(heists))
	for _, heist := range heists {
		rows = append(rows, adminListRow{
			ID: heist.ID,
			Cells: []string{
				heist.Name,
				heist.StartAt.Format(time.RFC3339),
				string(heist.Phase),
				heist.Difficulty,
				strconv.Itoa(heist.CrewCount),
			},
		})
	}

	return renderPage(c, h.sessions, "admin_list.html", adminListData{
		Title:     "Heists",
		Base:      heistsBase,
		Columns:   []string{"Name", "Start", "Phase", "Difficulty", "Crew"},
		Rows:      rows,
		CanDelete: true,
	})
}

func (h *AdminHeistsHandler) EditForm(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	heist, err := sc.Client.GetHeist(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		return err
	}

	return renderPage(c, h.sessions, "admin_edit.html", adminEditData{
		Title:  "Edit heist",
		Action: heistsBase + "/" + id + "/edit",
		Fields: []adminField{
			{Label: "Name", Name: "name", Type: "text", Value: heist.Name},
			{Label: "Phase", Name: "phase", Type: "text", Value: string(heist.Phase)},
			{Label: "Prefered tactic", Name: "prefered_tactic", Type: "text", Value: heist.PreferedTactic},
			{Label: "Difficulty", Name: "difficulty", Type: "text", Value: heist.Difficulty},
		},
	})
}

type heistForm struct {
	Name           string `form:"name" validate:"required"`
	Phase          string `form:"phase" validate:"required,oneof=planning in_progress succeeded failed cancelled"`
	PreferedTactic string `form:"prefered_tactic"`
	Difficulty     string `form:"difficulty"`
}

func (h *AdminHeistsHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	editPath := heistsBase + "/" + id + "/edit"

	var form heistForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.UpdateHeist(c.Request().Context(), id, ports.HeistInput{
		Name:           form.Name,
		Phase:          form.Phase,
		PreferedTactic: form.PreferedTactic,
		Difficulty:     form.Difficulty,
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, editPath, locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, editPath, successFlash(c, locale.MsgSaved))
}

// Delete shares the contractor-facing mutation: an admin cancelling a heist
// and a contractor cancelling their own go through the same backend call.
func (h *AdminHeistsHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	err := sc.Client.DeleteHeist(c.Request().Context(), id)
	if err == nil {
		return flashRedirect(c, h.sessions, heistsBase, successFlash(c, locale.MsgHeistDeleted))
	}

	if apiErr, ok := graphql.AsAPIError(err); ok {
		if graphql.HasStatus(apiErr, http.StatusNotFound) {
			return flashRedirect(c, h.sessions, heistsBase+"/"+id+"/edit", errorFlash(c, locale.MsgNotFound))
		}
		if graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
			if msg == "" {
				msg = locale.T(sc.Locale, locale.MsgOperationFailed)
			}
			return flashRedirect(c, h.sessions, heistsBase, domain.FlashMessage{Content: msg, Type: domain.FlashError})
		}
	}
	return err
}

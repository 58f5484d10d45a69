package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

const locationsBase = "/admin/locations"

type AdminLocationsHandler struct {
	sessions *session.Store
}

func NewAdminLocationsHandler(sessions *session.Store) *AdminLocationsHandler {
	return &AdminLocationsHandler{sessions: sessions}
}

func (h *AdminLocationsHandler) List(c echo.Context) error {
	sc := middleware.RequestScope(c)

	locations, err := sc.Client.ListLocations(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]adminListRow, 0, len(locations))
	for _, l := range locations {
		rows = append(rows, adminListRow{
			ID:    l.ID,
			Cells: []string{l.Name, l.Address, l.PlaceID},
		})
	}

	return renderPage(c, h.sessions, "admin_list.html", adminListData{
		Title:     "Locations",
		Base:      locationsBase,
		Columns:   []string{"Name", "Address", "Place"},
		Rows:      rows,
		CanDelete: true,
	})
}

func (h *AdminLocationsHandler) EditForm(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	loc, err := sc.Client.GetLocation(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		return err
	}

	return renderPage(c, h.sessions, "admin_edit.html", adminEditData{
		Title:  "Edit location",
		Action: locationsBase + "/" + id + "/edit",
		Fields: []adminField{
			{Label: "Name", Name: "name", Type: "text", Value: loc.Name},
			{Label: "Address", Name: "address", Type: "text", Value: loc.Address},
		},
	})
}

type locationForm struct {
	Name    string `form:"name" validate:"required"`
	Address string `form:"address" validate:"required"`
}

func (h *AdminLocationsHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	editPath := locationsBase + "/" + id + "/edit"

	var form locationForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.UpdateLocation(c.Request().Context(), id, ports.LocationInput{
		Name:    form.Name,
		Address: form.Address,
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, editPath, locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, editPath, successFlash(c, locale.MsgSaved))
}

func (h *AdminLocationsHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	err := sc.Client.DeleteLocation(c.Request().Context(), id)
	if err == nil {
		return flashRedirect(c, h.sessions, locationsBase, successFlash(c, locale.MsgDeleted))
	}

	if apiErr, ok := graphql.AsAPIError(err); ok {
		if graphql.HasStatus(apiErr, http.StatusNotFound) {
			return flashRedirect(c, h.sessions, locationsBase+"/"+id+"/edit", errorFlash(c, locale.MsgNotFound))
		}
		if graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
			if msg == "" {
				msg = locale.T(sc.Locale, locale.MsgOperationFailed)
			}
			return flashRedirect(c, h.sessions, locationsBase, domain.FlashMessage{Content: msg, Type: domain.FlashError})
		}
	}
	return err
}

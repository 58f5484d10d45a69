package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

const establishmentsBase = "/admin/establishments"

type AdminEstablishmentsHandler struct {
	sessions *session.Store
}

func NewAdminEstablishmentsHandler(sessions *session.Store) *AdminEstablishmentsHandler {
	return &AdminEstablishmentsHandler{sessions: sessions}
}

func (h *AdminEstablishmentsHandler) List(c echo.Context) error {
	sc := middleware.RequestScope(c)

	establishments, err := sc.Client.ListEstablishments(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]adminListRow, 0, len(establishments))
	for _, e := range establishments {
		rows = append(rows, adminListRow{
			ID: e.ID,
			Cells: []string{
				e.Name,
				fmt.Sprintf("%.2f", e.MinimumWage),
				strconv.Itoa(e.MinimumWorkTimePerWeek),
			},
		})
	}

	return renderPage(c, h.sessions, "admin_list.html", adminListData{
		Title:     "Establishments",
		Base:      establishmentsBase,
		Columns:   []string{"Name", "Minimum wage", "Min. hours/week"},
		Rows:      rows,
		CanDelete: true,
	})
}

func (h *AdminEstablishmentsHandler) EditForm(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	est, err := sc.Client.GetEstablishment(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		return err
	}

	return renderPage(c, h.sessions, "admin_edit.html", adminEditData{
		Title:  "Edit establishment",
		Action: establishmentsBase + "/" + id + "/edit",
		Fields: []adminField{
			{Label: "Name", Name: "name", Type: "text", Value: est.Name},
			{Label: "Description", Name: "description", Type: "text", Value: est.Description},
			{Label: "Minimum wage", Name: "minimum_wage", Type: "number", Value: fmt.Sprintf("%.2f", est.MinimumWage)},
			{Label: "Min. hours/week", Name: "minimum_work_time", Type: "number", Value: strconv.Itoa(est.MinimumWorkTimePerWeek)},
		},
	})
}

type establishmentForm struct {
	Name            string  `form:"name" validate:"required"`
	Description     string  `form:"description"`
	MinimumWage     float64 `form:"minimum_wage" validate:"gte=0"`
	MinimumWorkTime int     `form:"minimum_work_time" validate:"gte=0"`
}

func (h *AdminEstablishmentsHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	editPath := establishmentsBase + "/" + id + "/edit"

	var form establishmentForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.UpdateEstablishment(c.Request().Context(), id, ports.EstablishmentInput{
		Name:                   form.Name,
		Description:            form.Description,
		MinimumWage:            form.MinimumWage,
		MinimumWorkTimePerWeek: form.MinimumWorkTime,
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, editPath, locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, editPath, successFlash(c, locale.MsgSaved))
}

func (h *AdminEstablishmentsHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	err := sc.Client.DeleteEstablishment(c.Request().Context(), id)
	if err == nil {
		return flashRedirect(c, h.sessions, establishmentsBase, successFlash(c, locale.MsgDeleted))
	}

	if apiErr, ok := graphql.AsAPIError(err); ok {
		if graphql.HasStatus(apiErr, http.StatusNotFound) {
			return flashRedirect(c, h.sessions, establishmentsBase+"/"+id+"/edit", errorFlash(c, locale.MsgNotFound))
		}
		if graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
			if msg == "" {
				msg = locale.T(sc.Locale, locale.MsgOperationFailed)
			}
			return flashRedirect(c, h.sessions, establishmentsBase, domain.FlashMessage{Content: msg, Type: domain.FlashError})
		}
	}
	return err
}

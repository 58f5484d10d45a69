package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

const usersBase = "/admin/users"

type AdminUsersHandler struct {
	sessions *session.Store
}

func NewAdminUsersHandler(sessions *session.Store) *AdminUsersHandler {
	return &AdminUsersHandler{sessions: sessions}
}

func (h *AdminUsersHandler) List(c echo.Context) error {
	sc := middleware.RequestScope(c)

	users, err := sc.Client.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]adminListRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, adminListRow{
			ID:    u.ID,
			Cells: []string{u.Username, u.Email, u.Status, strings.Join(u.Roles, ", ")},
		})
	}

	return renderPage(c, h.sessions, "admin_list.html", adminListData{
		Title:     "Users",
		Base:      usersBase,
		Columns:   []string{"Username", "Email", "Status", "Roles"},
		Rows:      rows,
		CanDelete: true,
	})
}

func (h *AdminUsersHandler) EditForm(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	user, err := sc.Client.GetUser(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		return err
	}

	return renderPage(c, h.sessions, "admin_edit.html", adminEditData{
		Title:  "Edit user " + user.Username,
		Action: usersBase + "/" + id + "/edit",
		Fields: []adminField{
			{Label: "Email", Name: "email", Type: "email", Value: user.Email},
			{Label: "Status", Name: "status", Type: "text", Value: user.Status},
		},
	})
}

type userForm struct {
	Email  string `form:"email" validate:"required,email"`
	Status string `form:"status" validate:"required,oneof=unverified pending verified dead"`
}

func (h *AdminUsersHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	editPath := usersBase + "/" + id + "/edit"

	var form userForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.UpdateUser(c.Request().Context(), id, ports.UserInput{
		Email:  form.Email,
		Status: form.Status,
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, editPath, locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, editPath, successFlash(c, locale.MsgSaved))
}

func (h *AdminUsersHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	err := sc.Client.DeleteUser(c.Request().Context(), id)
	if err == nil {
		return flashRedirect(c, h.sessions, usersBase, successFlash(c, locale.MsgDeleted))
	}

	if apiErr, ok := graphql.AsAPIError(err); ok {
		if graphql.HasStatus(apiErr, http.StatusNotFound) {
			return flashRedirect(c, h.sessions, usersBase+"/"+id+"/edit", errorFlash(c, locale.MsgNotFound))
		}
		if graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
			if msg == "" {
				msg = locale.T(sc.Locale, locale.MsgOperationFailed)
			}
			return flashRedirect(c, h.sessions, usersBase, domain.FlashMessage{Content: msg, Type: domain.FlashError})
		}
	}
	return err
}

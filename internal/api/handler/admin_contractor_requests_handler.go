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

const contractorRequestsBase = "/admin/contractor_requests"

// AdminContractorRequestsHandler reviews applications for ROLE_CONTRACTOR.
type AdminContractorRequestsHandler struct {
	sessions *session.Store
}

func NewAdminContractorRequestsHandler(sessions *session.Store) *AdminContractorRequestsHandler {
	return &AdminContractorRequestsHandler{sessions: sessions}
}

func (h *AdminContractorRequestsHandler) List(c echo.Context) error {
	sc := middleware.RequestScope(c)

	requests, err := sc.Client.ListContractorRequests(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]adminListRow, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, adminListRow{
			ID:    r.ID,
			Cells: []string{r.UserID, r.Status, r.Reason},
		})
	}

	return renderPage(c, h.sessions, "admin_list.html", adminListData{
		Title:     "Contractor requests",
		Base:      contractorRequestsBase,
		Columns:   []string{"User", "Status", "Reason"},
		Rows:      rows,
		CanDelete: true,
	})
}

func (h *AdminContractorRequestsHandler) EditForm(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	req, err := sc.Client.GetContractorRequest(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		return err
	}

	return renderPage(c, h.sessions, "admin_edit.html", adminEditData{
		Title:  "Review contractor request",
		Action: contractorRequestsBase + "/" + id + "/edit",
		Fields: []adminField{
			{Label: "Status", Name: "status", Type: "text", Value: req.Status},
			{Label: "Admin comment", Name: "admin_comment", Type: "text", Value: req.AdminComment},
		},
	})
}

type contractorRequestForm struct {
	Status       string `form:"status" validate:"required,oneof=pending accepted rejected"`
	AdminComment string `form:"admin_comment"`
}

func (h *AdminContractorRequestsHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	editPath := contractorRequestsBase + "/" + id + "/edit"

	var form contractorRequestForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.UpdateContractorRequest(c.Request().Context(), id, ports.ContractorRequestInput{
		Status:       form.Status,
		AdminComment: form.AdminComment,
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, editPath, locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, editPath, successFlash(c, locale.MsgSaved))
}

func (h *AdminContractorRequestsHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	err := sc.Client.DeleteContractorRequest(c.Request().Context(), id)
	if err == nil {
		return flashRedirect(c, h.sessions, contractorRequestsBase, successFlash(c, locale.MsgDeleted))
	}

	if apiErr, ok := graphql.AsAPIError(err); ok {
		if graphql.HasStatus(apiErr, http.StatusNotFound) {
			return flashRedirect(c, h.sessions, contractorRequestsBase+"/"+id+"/edit", errorFlash(c, locale.MsgNotFound))
		}
		if graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
			if msg == "" {
				msg = locale.T(sc.Locale, locale.MsgOperationFailed)
			}
			return flashRedirect(c, h.sessions, contractorRequestsBase, domain.FlashMessage{Content: msg, Type: domain.FlashError})
		}
	}
	return err
}

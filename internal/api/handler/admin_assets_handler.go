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

const assetsBase = "/admin/assets"

// AdminAssetsHandler is the back-office CRUD surface for assets.
type AdminAssetsHandler struct {
	sessions *session.Store
}

func NewAdminAssetsHandler(sessions *session.Store) *AdminAssetsHandler {
	return &AdminAssetsHandler{sessions: sessions}
}

func (h *AdminAssetsHandler) List(c echo.Context) error {
	sc := middleware.RequestScope(c)

	assets, err := sc.Client.ListAssets(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]adminListRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, adminListRow{
			ID: a.ID,
			Cells: []string{
				a.Name,
				fmt.Sprintf("%.2f", a.Price),
				a.Type,
				strconv.Itoa(a.MaxQuantity),
				strconv.FormatBool(a.TeamAsset),
			},
		})
	}

	return renderPage(c, h.sessions, "admin_list.html", adminListData{
		Title:     "Assets",
		Base:      assetsBase,
		Columns:   []string{"Name", "Price", "Type", "Max quantity", "Team asset"},
		Rows:      rows,
		CanDelete: true,
	})
}

func (h *AdminAssetsHandler) EditForm(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	asset, err := sc.Client.GetAsset(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := graphql.AsAPIError(err); ok && graphql.HasStatus(apiErr, http.StatusNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, locale.T(sc.Locale, locale.MsgNotFound))
		}
		return err
	}

	return renderPage(c, h.sessions, "admin_edit.html", adminEditData{
		Title:  "Edit asset",
		Action: assetsBase + "/" + id + "/edit",
		Fields: []adminField{
			{Label: "Name", Name: "name", Type: "text", Value: asset.Name},
			{Label: "Price", Name: "price", Type: "number", Value: fmt.Sprintf("%.2f", asset.Price)},
			{Label: "Type", Name: "type", Type: "text", Value: asset.Type},
			{Label: "Max quantity", Name: "max_quantity", Type: "number", Value: strconv.Itoa(asset.MaxQuantity)},
			{Label: "Team asset", Name: "team_asset", Type: "checkbox", Checked: asset.TeamAsset},
		},
	})
}

type assetForm struct {
	Name        string  `form:"name" validate:"required"`
	Price       float64 `form:"price" validate:"gte=0"`
	Type        string  `form:"type" validate:"required"`
	MaxQuantity int     `form:"max_quantity" validate:"gte=0"`
	TeamAsset   string  `form:"team_asset"`
}

func (h *AdminAssetsHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	editPath := assetsBase + "/" + id + "/edit"

	var form assetForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, editPath, domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.UpdateAsset(c.Request().Context(), id, ports.AssetInput{
		Name:        form.Name,
		Price:       form.Price,
		Type:        form.Type,
		MaxQuantity: form.MaxQuantity,
		TeamAsset:   form.TeamAsset == "true",
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, editPath, locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, editPath, successFlash(c, locale.MsgSaved))
}

// Delete removes an asset. A backend 404 flashes the localized not-found
// text and sends the admin back to the asset's own page; anything outside
// the expected statuses re-raises and renders the generic error page.
func (h *AdminAssetsHandler) Delete(c echo.Context) error {
	sc := middleware.RequestScope(c)
	id := c.Param("id")

	err := sc.Client.DeleteAsset(c.Request().Context(), id)
	if err == nil {
		return flashRedirect(c, h.sessions, assetsBase, successFlash(c, locale.MsgDeleted))
	}

	if apiErr, ok := graphql.AsAPIError(err); ok {
		if graphql.HasStatus(apiErr, http.StatusNotFound) {
			return flashRedirect(c, h.sessions, assetsBase+"/"+id+"/edit", errorFlash(c, locale.MsgNotFound))
		}
		if graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			msg := graphql.MessageForAnyStatus(apiErr, expectedStatuses...)
			if msg == "" {
				msg = locale.T(sc.Locale, locale.MsgOperationFailed)
			}
			return flashRedirect(c, h.sessions, assetsBase, domain.FlashMessage{Content: msg, Type: domain.FlashError})
		}
	}
	return err
}

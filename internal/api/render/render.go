// Package render implements echo's Renderer contract over html/template.
// Templates are embedded so the binary ships self-contained.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

//go:embed templates/*.html
var files embed.FS

// Page is the view model every template receives. Data carries the
// page-specific payload.
type Page struct {
	User     *domain.Identity
	Locale   locale.Locale
	DarkMode bool
	Flash    *domain.FlashMessage
	Data     any
}

type Renderer struct {
	templates *template.Template
}

// New parses all embedded templates. Template names are the base file names
// (e.g. "login.html").
func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(files, "templates/*.html")),
	}
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

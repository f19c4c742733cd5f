// Package web serves the HTML frontend: the bus list and per-bus seat
// pages.  Pages are rendered server-side from the same catalog data the
// JSON API exposes; booking submissions go through the JSON API from a
// small amount of inline script.
package web

import (
    "embed"
    "html/template"
    "io"

    "github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
    templates *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() *Renderer {
    return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
    return r.templates.ExecuteTemplate(w, name, data)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollwave/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData carries everything any page template can reference. Unused
// fields stay zero-valued.
type PageData struct {
	Username     string
	ErrorMessage string
	Polls        []models.Poll
	TotalPolls   int
	VoteCount    int
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page template. Template execution errors are
// logged; by then part of the response may already be on the wire.
func (r *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// StaticHandler serves the embedded /static assets.
func StaticHandler() http.Handler {
	return http.FileServerFS(staticFS)
}

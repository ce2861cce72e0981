// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public pages.
// Templates are embedded at compile time; every page template is paired
// with the shared base layout.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var pagesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static serves the embedded site assets (stylesheets) for mounting
// under /assets.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return http.FileServer(http.FS(sub))
}

// pages lists the page templates paired with the base layout.
var pages = []string{"home", "resources", "resource"}

// PageData holds all data passed to page templates.
type PageData struct {
	Title string         // Page title for the <title> tag
	Data  map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// date formats a timestamp for display on listing pages.
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		// stars renders a filled-star string for a 1..5 rating.
		"stars": func(rating int) string {
			if rating < 0 {
				rating = 0
			}
			if rating > 5 {
				rating = 5
			}
			out := ""
			for i := 0; i < rating; i++ {
				out += "★"
			}
			for i := rating; i < 5; i++ {
				out += "☆"
			}
			return out
		},
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range pages {
		t, err := template.New("base.html").Funcs(funcMap).ParseFS(pagesFS,
			"templates/base.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Page executes the named page template and returns the rendered HTML.
// Returning bytes lets callers store the result in the page cache.
func (r *Renderer) Page(name string, data *PageData) ([]byte, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

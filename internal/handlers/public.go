// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandbio/internal/cache"
	"brandbio/internal/markdown"
	"brandbio/internal/render"
	"brandbio/internal/store"
)

// Public groups handlers for the server-rendered public site. Rendered
// pages go through the full-page cache when one is configured.
type Public struct {
	renderer     *render.Renderer
	resources    *store.ResourceStore
	testimonials *store.TestimonialStore
	pageCache    *cache.PageCache
}

// NewPublic creates the Public handler group.
func NewPublic(renderer *render.Renderer, resources *store.ResourceStore, testimonials *store.TestimonialStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:     renderer,
		resources:    resources,
		testimonials: testimonials,
		pageCache:    pageCache,
	}
}

// Homepage renders the marketing homepage with the visible testimonials.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.HomepageKey()); ok {
		writeHTML(w, cached)
		return
	}

	rendered, err := p.renderer.Page("home", &render.PageData{
		Title: "Home",
		Data: map[string]any{
			"Testimonials": p.testimonials.List(true),
		},
	})
	if err != nil {
		slog.Error("render homepage failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.HomepageKey(), rendered)
	writeHTML(w, rendered)
}

// ResourcesPage renders the resource listing, newest first.
func (p *Public) ResourcesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.ResourceListKey()); ok {
		writeHTML(w, cached)
		return
	}

	rendered, err := p.renderer.Page("resources", &render.PageData{
		Title: "Resources",
		Data: map[string]any{
			"Resources": p.resources.List(""),
		},
	})
	if err != nil {
		slog.Error("render resources failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.ResourceListKey(), rendered)
	writeHTML(w, rendered)
}

// ResourcePage renders a single resource by slug, converting its Markdown
// content to HTML. Unknown slugs are a 404.
func (p *Public) ResourcePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.SlugKey(slugParam)); ok {
		writeHTML(w, cached)
		return
	}

	resource := p.resources.FindBySlug(slugParam)
	if resource == nil {
		http.Error(w, "Resource not found", http.StatusNotFound)
		return
	}

	contentHTML := "<p>Content coming soon.</p>"
	if resource.Content != "" {
		html, err := markdown.ToHTML(resource.Content)
		if err != nil {
			slog.Error("render markdown failed", "error", err, "slug", slugParam)
		} else {
			contentHTML = html
		}
	}

	rendered, err := p.renderer.Page("resource", &render.PageData{
		Title: resource.Title,
		Data: map[string]any{
			"Resource":    resource,
			"ContentHTML": template.HTML(contentHTML),
		},
	})
	if err != nil {
		slog.Error("render resource failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.SlugKey(slugParam), rendered)
	writeHTML(w, rendered)
}

// LegacyResourcesRedirect sends the old static /resources.html path to
// the server-rendered listing.
func (p *Public) LegacyResourcesRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/resources", http.StatusMovedPermanently)
}

// writeHTML writes a rendered page with the HTML content type.
func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

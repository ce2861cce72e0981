// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandbio/internal/cache"
	"brandbio/internal/store"
)

// TestimonialsList handles GET /api/testimonials. ?visible=true filters
// to publicly displayed records.
func (a *API) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	visibleOnly := r.URL.Query().Get("visible") == "true"
	writeJSON(w, http.StatusOK, a.testimonials.List(visibleOnly))
}

// TestimonialsCreate handles POST /api/testimonials.
func (a *API) TestimonialsCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Quote    string `json:"quote"`
		Name     string `json:"name"`
		Role     string `json:"role"`
		Initials string `json:"initials"`
		Rating   *int   `json:"rating"`
		Visible  *bool  `json:"visible"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	item, err := a.testimonials.Create(store.CreateTestimonialInput{
		Quote:    in.Quote,
		Name:     in.Name,
		Role:     in.Role,
		Initials: in.Initials,
		Rating:   in.Rating,
		Visible:  in.Visible,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	writeJSON(w, http.StatusCreated, item)
}

// TestimonialsUpdate handles PUT /api/testimonials/{id}.
func (a *API) TestimonialsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var in struct {
		Quote    *string `json:"quote"`
		Name     *string `json:"name"`
		Role     *string `json:"role"`
		Initials *string `json:"initials"`
		Rating   *int    `json:"rating"`
		Visible  *bool   `json:"visible"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	item, err := a.testimonials.Update(id, store.UpdateTestimonialInput{
		Quote:    in.Quote,
		Name:     in.Name,
		Role:     in.Role,
		Initials: in.Initials,
		Rating:   in.Rating,
		Visible:  in.Visible,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	writeJSON(w, http.StatusOK, item)
}

// TestimonialsDelete handles DELETE /api/testimonials/{id}.
func (a *API) TestimonialsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err := a.testimonials.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}

	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

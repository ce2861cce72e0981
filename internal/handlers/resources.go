// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandbio/internal/cache"
	"brandbio/internal/store"
	"brandbio/internal/uploads"
)

// ResourcesList handles GET /api/resources with an optional ?type= filter.
func (a *API) ResourcesList(w http.ResponseWriter, r *http.Request) {
	items := a.resources.List(r.URL.Query().Get("type"))
	writeJSON(w, http.StatusOK, items)
}

// ResourcesGet handles GET /api/resources/{id}.
func (a *API) ResourcesGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	item := a.resources.FindByID(id)
	if item == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ResourcesCreate handles POST /api/resources. The body is a multipart
// form with text fields plus an optional image file.
func (a *API) ResourcesCreate(w http.ResponseWriter, r *http.Request) {
	imageURL, ok := a.receiveImage(w, r)
	if !ok {
		return
	}

	item, err := a.resources.Create(store.CreateResourceInput{
		Type:        r.PostFormValue("type"),
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Content:     r.PostFormValue("content"),
		Link:        r.PostFormValue("link"),
		ImageURL:    imageURL,
	})
	if err != nil {
		// Don't keep an orphan file when the record was rejected.
		if imageURL != "" && a.uploads != nil {
			a.uploads.Remove(imageURL)
		}
		writeStoreError(w, err)
		return
	}

	a.pageCache.Invalidate(r.Context(), cache.ResourceListKey())
	writeJSON(w, http.StatusCreated, item)
}

// ResourcesUpdate handles PUT /api/resources/{id} with partial-update
// semantics: absent fields stay untouched.
func (a *API) ResourcesUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	imageURL, ok := a.receiveImage(w, r)
	if !ok {
		return
	}

	in := store.UpdateResourceInput{
		Type:        formString(r, "type"),
		Title:       formString(r, "title"),
		Description: formString(r, "description"),
		Content:     formString(r, "content"),
		Link:        formString(r, "link"),
	}
	if imageURL != "" {
		in.ImageURL = &imageURL
	}

	old := a.resources.FindByID(id)
	item, err := a.resources.Update(id, in)
	if err != nil {
		if imageURL != "" && a.uploads != nil {
			a.uploads.Remove(imageURL)
		}
		writeStoreError(w, err)
		return
	}

	a.invalidateResourcePages(r.Context(), item.Slug)
	if old != nil && old.Slug != item.Slug {
		a.pageCache.Invalidate(r.Context(), cache.SlugKey(old.Slug))
	}
	writeJSON(w, http.StatusOK, item)
}

// ResourcesDelete handles DELETE /api/resources/{id}. The record's
// uploaded image is removed along with it.
func (a *API) ResourcesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	old := a.resources.FindByID(id)
	if err := a.resources.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}

	if old != nil {
		a.invalidateResourcePages(r.Context(), old.Slug)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

// receiveImage stores an uploaded "image" file part, if any, and returns
// its public URL. A false return means the response has been written.
// The body cap leaves headroom over the 5 MB file limit so long text
// fields next to a large image are not rejected; the file part itself is
// checked against MaxUploadSize.
func (a *API) receiveImage(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxFormSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			// No image part; make sure the text fields are still parsed.
			r.ParseMultipartForm(uploads.MaxFormSize)
			r.ParseForm()
			return "", true
		}
		writeError(w, http.StatusBadRequest, "Image too large or malformed upload (max 5 MB)")
		return "", false
	}
	defer file.Close()

	if a.uploads == nil {
		writeError(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return "", false
	}
	if header.Size > uploads.MaxUploadSize {
		writeError(w, http.StatusBadRequest, "Image too large or malformed upload (max 5 MB)")
		return "", false
	}
	if !uploads.Allowed(header.Filename, header.Header.Get("Content-Type")) {
		writeError(w, http.StatusBadRequest, "Only jpeg, png, gif, webp, and svg images are allowed")
		return "", false
	}

	url, err := a.uploads.Save(header.Filename, file)
	if err != nil {
		writeStoreError(w, err)
		return "", false
	}
	return url, true
}

// invalidateResourcePages drops the cached listing and detail pages after
// a resource mutation.
func (a *API) invalidateResourcePages(ctx context.Context, slug string) {
	a.pageCache.Invalidate(ctx, cache.ResourceListKey())
	if slug != "" {
		a.pageCache.Invalidate(ctx, cache.SlugKey(slug))
	}
}

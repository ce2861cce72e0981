// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"brandbio/internal/uploads"
)

// Upload handles POST /api/upload, a standalone multipart image upload
// used by the dashboard's content editor. Responds with the public URL.
func (a *API) Upload(w http.ResponseWriter, r *http.Request) {
	if a.uploads == nil {
		writeError(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxFormSize)
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusBadRequest, "Image too large or malformed upload (max 5 MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "No image")
		return
	}
	defer file.Close()

	if header.Size > uploads.MaxUploadSize {
		writeError(w, http.StatusBadRequest, "Image too large or malformed upload (max 5 MB)")
		return
	}
	if !uploads.Allowed(header.Filename, header.Header.Get("Content-Type")) {
		writeError(w, http.StatusBadRequest, "Only jpeg, png, gif, webp, and svg images are allowed")
		return
	}

	url, err := a.uploads.Save(header.Filename, file)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API and the server-rendered public
// pages.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"brandbio/internal/store"
)

// writeJSON serializes payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("write json response", "error", err)
	}
}

// writeError writes the API error shape: {"error": "..."}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps the store error taxonomy onto HTTP status codes:
// validation failures are 400, unknown ids 404, and anything else
// (storage included) 500.
func writeStoreError(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("store operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON decodes a request body into v, reporting malformed payloads
// to the client.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// formString returns a pointer to the form field value when the field was
// present in the request, nil otherwise. Presence matters for partial
// updates: an absent field leaves the record untouched, while a present
// empty field may be an explicit clear.
func formString(r *http.Request, key string) *string {
	if vals, ok := r.PostForm[key]; ok && len(vals) > 0 {
		v := vals[0]
		return &v
	}
	return nil
}

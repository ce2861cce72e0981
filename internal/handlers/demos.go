// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandbio/internal/store"
)

// DemosList handles GET /api/demos.
func (a *API) DemosList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.demos.List())
}

// DemosCreate handles POST /api/demos, the public lead-capture form.
// The response is a thank-you message, not the record: the submitter is a
// site visitor, not the dashboard.
func (a *API) DemosCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Company string `json:"company"`
		AdSpend string `json:"adSpend"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	if _, err := a.demos.Create(store.CreateDemoInput{
		Name:    in.Name,
		Email:   in.Email,
		Company: in.Company,
		AdSpend: in.AdSpend,
	}); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Demo request submitted! We'll be in touch shortly.",
	})
}

// DemosUpdate handles PUT /api/demos/{id}: admin edits to status and notes.
func (a *API) DemosUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var in struct {
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	item, err := a.demos.Update(id, store.UpdateDemoInput{Status: in.Status, Notes: in.Notes})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DemosDelete handles DELETE /api/demos/{id}.
func (a *API) DemosDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err := a.demos.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

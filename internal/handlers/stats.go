// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"brandbio/internal/analytics"
)

// Stats handles GET /api/stats: counts across all three collections,
// recomputed on every call.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stats.ComputeStats())
}

// Activity handles GET /api/activity?limit=, the merged activity feed
// powering the dashboard timeline.
func (a *API) Activity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events := a.stats.BuildTimeline(limit)
	if events == nil {
		events = []analytics.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"brandbio/internal/analytics"
	"brandbio/internal/cache"
	"brandbio/internal/store"
	"brandbio/internal/uploads"
)

// API groups the JSON endpoint handlers and their dependencies.
type API struct {
	resources    *store.ResourceStore
	demos        *store.DemoStore
	testimonials *store.TestimonialStore
	stats        *analytics.Aggregator
	uploads      *uploads.Dir // nil when uploads are disabled
	pageCache    *cache.PageCache

	adminPassword     string
	adminPasswordHash string
}

// NewAPI creates the API handler group.
func NewAPI(
	resources *store.ResourceStore,
	demos *store.DemoStore,
	testimonials *store.TestimonialStore,
	stats *analytics.Aggregator,
	uploadsDir *uploads.Dir,
	pageCache *cache.PageCache,
	adminPassword, adminPasswordHash string,
) *API {
	return &API{
		resources:         resources,
		demos:             demos,
		testimonials:      testimonials,
		stats:             stats,
		uploads:           uploadsDir,
		pageCache:         pageCache,
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
	}
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package analytics computes read-only views across the three record
// collections: aggregate counts and the recent-activity timeline. Nothing
// here is cached; every call recomputes from the current collections.
package analytics

import (
	"brandbio/internal/models"
	"brandbio/internal/store"
)

// Stats holds counts and breakdowns across all three collections.
type Stats struct {
	Resources    ResourceStats    `json:"resources"`
	Demos        DemoStats        `json:"demos"`
	Testimonials TestimonialStats `json:"testimonials"`
}

// ResourceStats breaks resources down by type.
type ResourceStats struct {
	Total       int `json:"total"`
	CaseStudies int `json:"caseStudies"`
	Blogs       int `json:"blogs"`
}

// DemoStats breaks demo requests down by status.
type DemoStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Closed    int `json:"closed"`
}

// TestimonialStats counts testimonials and how many are publicly visible.
type TestimonialStats struct {
	Total   int `json:"total"`
	Visible int `json:"visible"`
}

// Aggregator reads the three stores to build stats and the activity
// timeline.
type Aggregator struct {
	resources    *store.ResourceStore
	demos        *store.DemoStore
	testimonials *store.TestimonialStore
}

// New creates an Aggregator over the given stores.
func New(resources *store.ResourceStore, demos *store.DemoStore, testimonials *store.TestimonialStore) *Aggregator {
	return &Aggregator{resources: resources, demos: demos, testimonials: testimonials}
}

// ComputeStats recomputes all counts from the current collections.
func (a *Aggregator) ComputeStats() Stats {
	var s Stats

	for _, r := range a.resources.List("") {
		s.Resources.Total++
		switch r.Type {
		case models.ResourceTypeCaseStudy:
			s.Resources.CaseStudies++
		case models.ResourceTypeBlog:
			s.Resources.Blogs++
		}
	}

	for _, d := range a.demos.List() {
		s.Demos.Total++
		switch d.Status {
		case models.DemoStatusNew:
			s.Demos.New++
		case models.DemoStatusContacted:
			s.Demos.Contacted++
		case models.DemoStatusClosed:
			s.Demos.Closed++
		}
	}

	for _, t := range a.testimonials.List(false) {
		s.Testimonials.Total++
		if t.Visible {
			s.Testimonials.Visible++
		}
	}

	return s
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package models defines the three record types persisted by the site:
// resources (case studies and blog posts), demo requests, and testimonials.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceType distinguishes case studies from blog posts in the unified
// resources collection.
type ResourceType string

const (
	ResourceTypeCaseStudy ResourceType = "case-study"
	ResourceTypeBlog      ResourceType = "blog"
)

// Valid reports whether the value is a known resource type.
func (t ResourceType) Valid() bool {
	return t == ResourceTypeCaseStudy || t == ResourceTypeBlog
}

// Resource is a downloadable or readable marketing asset shown on the
// public resources pages. Slug is unique within the collection and derived
// from the title.
type Resource struct {
	ID          uuid.UUID    `json:"id"`
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Content     string       `json:"content"`  // optional long-form Markdown
	ImageURL    string       `json:"imageUrl"` // relative URL under /assets/uploads, "" if none
	Link        string       `json:"link"`     // optional external link
	CreatedAt   time.Time    `json:"createdAt"`
}

// TypeLabel returns the human-readable name of the resource type.
func (r *Resource) TypeLabel() string {
	if r.Type == ResourceTypeCaseStudy {
		return "case study"
	}
	return "blog post"
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"brandbio/internal/models"
	"brandbio/internal/slug"
	"brandbio/internal/storage"
)

const resourcesCollection = "resources"

// FileRemover deletes an uploaded file by its public URL. Removal is
// best-effort; a missing file is not an error.
type FileRemover interface {
	Remove(url string)
}

// ResourceStore handles CRUD for case studies and blog posts. The mutex
// serializes read-modify-write cycles so two concurrent mutations cannot
// silently drop each other's changes.
type ResourceStore struct {
	mu     sync.Mutex
	db     *storage.Store
	images FileRemover // may be nil when uploads are disabled
}

// NewResourceStore creates a ResourceStore backed by the given storage.
func NewResourceStore(db *storage.Store, images FileRemover) *ResourceStore {
	return &ResourceStore{db: db, images: images}
}

// CreateResourceInput holds the fields accepted when creating a resource.
type CreateResourceInput struct {
	Type        string
	Title       string
	Description string
	Content     string
	Link        string
	ImageURL    string
}

// UpdateResourceInput holds partial-update fields. Nil means "leave
// untouched". Type, Title, and Description are additionally ignored when
// present but empty; Content and Link treat an empty value as an explicit
// clear.
type UpdateResourceInput struct {
	Type        *string
	Title       *string
	Description *string
	Content     *string
	Link        *string
	ImageURL    *string
}

// List returns resources of the given type, newest first. An empty or
// "all" filter returns everything.
func (s *ResourceStore) List(typeFilter string) []models.Resource {
	var items []models.Resource
	s.db.Load(resourcesCollection, &items)

	if typeFilter != "" && typeFilter != "all" {
		filtered := items[:0]
		for _, r := range items {
			if string(r.Type) == typeFilter {
				filtered = append(filtered, r)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if items == nil {
		items = []models.Resource{}
	}
	return items
}

// FindByID returns the resource with the given id, or nil if none exists.
func (s *ResourceStore) FindByID(id uuid.UUID) *models.Resource {
	var items []models.Resource
	s.db.Load(resourcesCollection, &items)
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// FindBySlug returns the resource with the given slug, or nil if none exists.
func (s *ResourceStore) FindBySlug(slugParam string) *models.Resource {
	var items []models.Resource
	s.db.Load(resourcesCollection, &items)
	for i := range items {
		if items[i].Slug == slugParam {
			return &items[i]
		}
	}
	return nil
}

// Create validates the input, assigns id, slug, and timestamp, and
// persists the new resource.
func (s *ResourceStore) Create(in CreateResourceInput) (*models.Resource, error) {
	var missing []string
	if in.Type == "" {
		missing = append(missing, "type")
	}
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	if !models.ResourceType(in.Type).Valid() {
		return nil, &ValidationError{Invalid: []string{"type"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Resource
	s.db.Load(resourcesCollection, &items)

	item := models.Resource{
		ID:          uuid.New(),
		Type:        models.ResourceType(in.Type),
		Title:       in.Title,
		Slug:        uniqueResourceSlug(in.Title, items, uuid.Nil),
		Description: in.Description,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		CreatedAt:   time.Now().UTC(),
	}

	items = append(items, item)
	if err := s.db.Save(resourcesCollection, items); err != nil {
		return nil, &StorageError{Err: err}
	}
	return &item, nil
}

// Update applies the present fields to the resource with the given id.
// A title change recomputes the slug, excluding the record's own slug
// from the collision check. A replaced image has its old file removed.
func (s *ResourceStore) Update(id uuid.UUID, in UpdateResourceInput) (*models.Resource, error) {
	if in.Type != nil && *in.Type != "" && !models.ResourceType(*in.Type).Valid() {
		return nil, &ValidationError{Invalid: []string{"type"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Resource
	s.db.Load(resourcesCollection, &items)

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	r := &items[idx]
	if in.Type != nil && *in.Type != "" {
		r.Type = models.ResourceType(*in.Type)
	}
	if in.Title != nil && *in.Title != "" {
		r.Title = *in.Title
		r.Slug = uniqueResourceSlug(*in.Title, items, r.ID)
	}
	if in.Description != nil && *in.Description != "" {
		r.Description = *in.Description
	}
	if in.Content != nil {
		r.Content = *in.Content
	}
	if in.Link != nil {
		r.Link = *in.Link
	}
	if in.ImageURL != nil {
		if r.ImageURL != "" && s.images != nil {
			s.images.Remove(r.ImageURL)
		}
		r.ImageURL = *in.ImageURL
	}

	if err := s.db.Save(resourcesCollection, items); err != nil {
		return nil, &StorageError{Err: err}
	}
	return r, nil
}

// Delete removes the resource and its uploaded image, if any.
func (s *ResourceStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Resource
	s.db.Load(resourcesCollection, &items)

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	if items[idx].ImageURL != "" && s.images != nil {
		s.images.Remove(items[idx].ImageURL)
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := s.db.Save(resourcesCollection, items); err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

// Count returns the number of stored resources.
func (s *ResourceStore) Count() int {
	var items []models.Resource
	s.db.Load(resourcesCollection, &items)
	return len(items)
}

// uniqueResourceSlug derives a collection-unique slug for title, ignoring
// the record identified by excludeID (uuid.Nil when creating).
func uniqueResourceSlug(title string, items []models.Resource, excludeID uuid.UUID) string {
	return slug.Unique(title, func(candidate string) bool {
		for _, r := range items {
			if r.Slug == candidate && r.ID != excludeID {
				return true
			}
		}
		return false
	})
}

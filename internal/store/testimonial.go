// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"brandbio/internal/models"
	"brandbio/internal/storage"
)

const testimonialsCollection = "testimonials"

// TestimonialStore handles CRUD for customer testimonials. Only records
// with Visible set are shown on the public site.
type TestimonialStore struct {
	mu sync.Mutex
	db *storage.Store
}

// NewTestimonialStore creates a TestimonialStore backed by the given storage.
func NewTestimonialStore(db *storage.Store) *TestimonialStore {
	return &TestimonialStore{db: db}
}

// CreateTestimonialInput holds the fields accepted when creating a
// testimonial. Rating defaults to 5 when nil or zero; Initials are derived
// from Name when blank; Visible defaults to true unless explicitly false.
type CreateTestimonialInput struct {
	Quote    string
	Name     string
	Role     string
	Initials string
	Rating   *int
	Visible  *bool
}

// UpdateTestimonialInput holds partial-update fields. Quote, Name, and
// Initials are ignored when present but empty; Role treats an empty value
// as an explicit clear.
type UpdateTestimonialInput struct {
	Quote    *string
	Name     *string
	Role     *string
	Initials *string
	Rating   *int
	Visible  *bool
}

// List returns testimonials, newest first. With visibleOnly set, hidden
// records are filtered out regardless of the collection's stored order.
func (s *TestimonialStore) List(visibleOnly bool) []models.Testimonial {
	var items []models.Testimonial
	s.db.Load(testimonialsCollection, &items)

	if visibleOnly {
		filtered := items[:0]
		for _, t := range items {
			if t.Visible {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if items == nil {
		items = []models.Testimonial{}
	}
	return items
}

// Create validates the input, applies defaults, and persists a fully
// populated testimonial; derived fields are never left to read time.
func (s *TestimonialStore) Create(in CreateTestimonialInput) (*models.Testimonial, error) {
	var missing []string
	if in.Quote == "" {
		missing = append(missing, "quote")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	rating := 5
	if in.Rating != nil && *in.Rating != 0 {
		rating = *in.Rating
	}
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Invalid: []string{"rating"}}
	}

	initials := in.Initials
	if initials == "" {
		initials = models.Initials(in.Name)
	}

	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Testimonial
	s.db.Load(testimonialsCollection, &items)

	item := models.Testimonial{
		ID:        uuid.New(),
		Quote:     in.Quote,
		Name:      in.Name,
		Role:      in.Role,
		Initials:  initials,
		Rating:    rating,
		Visible:   visible,
		CreatedAt: time.Now().UTC(),
	}

	items = append(items, item)
	if err := s.db.Save(testimonialsCollection, items); err != nil {
		return nil, &StorageError{Err: err}
	}
	return &item, nil
}

// Update applies the present fields to the testimonial with the given id.
func (s *TestimonialStore) Update(id uuid.UUID, in UpdateTestimonialInput) (*models.Testimonial, error) {
	if in.Rating != nil && *in.Rating != 0 && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, &ValidationError{Invalid: []string{"rating"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Testimonial
	s.db.Load(testimonialsCollection, &items)

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

	t := &items[idx]
	if in.Quote != nil && *in.Quote != "" {
		t.Quote = *in.Quote
	}
	if in.Name != nil && *in.Name != "" {
		t.Name = *in.Name
	}
	if in.Role != nil {
		t.Role = *in.Role
	}
	if in.Initials != nil && *in.Initials != "" {
		t.Initials = *in.Initials
	}
	if in.Rating != nil && *in.Rating != 0 {
		t.Rating = *in.Rating
	}
	if in.Visible != nil {
		t.Visible = *in.Visible
	}

	if err := s.db.Save(testimonialsCollection, items); err != nil {
		return nil, &StorageError{Err: err}
	}
	return t, nil
}

// Delete removes the testimonial with the given id.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Testimonial
	s.db.Load(testimonialsCollection, &items)

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

	items = append(items[:idx], items[idx+1:]...)
	if err := s.db.Save(testimonialsCollection, items); err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

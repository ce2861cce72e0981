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

const demosCollection = "demos"

// DemoStore handles CRUD for demo requests. Creation happens through the
// public form; status and notes edits come from the admin dashboard.
type DemoStore struct {
	mu sync.Mutex
	db *storage.Store
}

// NewDemoStore creates a DemoStore backed by the given storage.
func NewDemoStore(db *storage.Store) *DemoStore {
	return &DemoStore{db: db}
}

// CreateDemoInput holds the public form fields. Company and AdSpend are
// optional.
type CreateDemoInput struct {
	Name    string
	Email   string
	Company string
	AdSpend string
}

// UpdateDemoInput holds admin-editable fields. Status is applied when
// present and non-empty and must be a known status value; there is no
// transition graph, so any status may follow any other. Notes treats an
// empty value as an explicit clear.
type UpdateDemoInput struct {
	Status *string
	Notes  *string
}

// List returns all demo requests, newest first.
func (s *DemoStore) List() []models.DemoRequest {
	var items []models.DemoRequest
	s.db.Load(demosCollection, &items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})
	if items == nil {
		items = []models.DemoRequest{}
	}
	return items
}

// Create validates the submission and persists a new request with status
// "new" and empty notes.
func (s *DemoStore) Create(in CreateDemoInput) (*models.DemoRequest, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.DemoRequest
	s.db.Load(demosCollection, &items)

	item := models.DemoRequest{
		ID:          uuid.New(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		AdSpend:     in.AdSpend,
		Status:      models.DemoStatusNew,
		Notes:       "",
		SubmittedAt: time.Now().UTC(),
	}

	items = append(items, item)
	if err := s.db.Save(demosCollection, items); err != nil {
		return nil, &StorageError{Err: err}
	}
	return &item, nil
}

// Update applies status and notes changes to the request with the given id.
func (s *DemoStore) Update(id uuid.UUID, in UpdateDemoInput) (*models.DemoRequest, error) {
	if in.Status != nil && *in.Status != "" && !models.DemoStatus(*in.Status).Valid() {
		return nil, &ValidationError{Invalid: []string{"status"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.DemoRequest
	s.db.Load(demosCollection, &items)

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

	d := &items[idx]
	if in.Status != nil && *in.Status != "" {
		d.Status = models.DemoStatus(*in.Status)
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}

	if err := s.db.Save(demosCollection, items); err != nil {
		return nil, &StorageError{Err: err}
	}
	return d, nil
}

// Delete removes the request with the given id.
func (s *DemoStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.DemoRequest
	s.db.Load(demosCollection, &items)

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
	if err := s.db.Save(demosCollection, items); err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

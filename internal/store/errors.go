// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package store implements the CRUD services for the three record types.
// Each store validates input, applies defaults, and persists its whole
// collection through the storage package.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by update and delete operations when no record
// has the given id.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or invalid input fields. Fields holds
// required fields that were absent; Invalid holds fields that were
// present with an unacceptable value.
type ValidationError struct {
	Fields  []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Fields) > 0 {
		parts = append(parts, strings.Join(e.Fields, ", ")+" required")
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// StorageError wraps a failure to persist a collection.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package storage persists named collections as flat JSON files on disk,
// one array-of-objects file per collection. Every mutation is a whole-file
// round-trip: callers load the full collection, modify it in memory, and
// save it back.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
)

// Store reads and writes JSON collection files under a single data directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file path backing the named collection.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a collection into out, which must be a pointer to a slice.
// Reads are fail-open: a missing or malformed file leaves out untouched
// (an empty collection) and never fails the caller. Decoding goes through
// a scratch value so a file that fails mid-decode, such as one with a
// type-mismatched field, cannot leak partial records into out.
func (s *Store) Load(name string, out any) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("collection unreadable, treating as empty", "collection", name, "error", err)
		}
		return
	}
	scratch := reflect.New(reflect.TypeOf(out).Elem())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		slog.Warn("collection malformed, treating as empty", "collection", name, "error", err)
		return
	}
	reflect.ValueOf(out).Elem().Set(scratch.Elem())
}

// Save replaces the named collection with v. The file is written to a
// temporary sibling and renamed into place so readers never observe a
// partial write.
func (s *Store) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	return nil
}

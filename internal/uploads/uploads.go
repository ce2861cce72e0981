// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package uploads manages the local image upload directory. Files are
// stored under a single flat directory and referenced from records by
// relative URL.
package uploads

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix is the public URL path under which uploaded files are served.
const URLPrefix = "/assets/uploads/"

// MaxUploadSize is the maximum allowed image upload size (5 MB). The
// limit applies to the file part alone, not the whole request.
const MaxUploadSize = 5 << 20

// MaxFormSize bounds a whole multipart body: the file budget plus room
// for long-form text fields, so a near-limit image next to article
// content still fits.
const MaxFormSize = MaxUploadSize + (2 << 20)

// allowedExtensions lists the image extensions accepted for upload.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// allowedMediaTypes lists the MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Dir is an upload directory on local disk.
type Dir struct {
	root string
}

// New creates the upload directory if needed and returns it.
func New(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Dir{root: root}, nil
}

// Allowed reports whether a file with the given name and MIME type may be
// uploaded. Both the extension and the declared type must be on the
// image whitelist.
func Allowed(filename, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext] && allowedMediaTypes[strings.ToLower(contentType)]
}

// Save stores the file content under a collision-resistant generated name
// (millisecond timestamp plus random suffix, original extension kept) and
// returns the public URL.
func (d *Dir) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%04d%s", time.Now().UnixMilli(), rand.IntN(10000), ext)

	f, err := os.Create(filepath.Join(d.root, name))
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("save upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("save upload: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes the file behind an upload URL. Best-effort: a missing
// file, a URL outside the uploads prefix, or an I/O failure is logged and
// otherwise ignored.
func (d *Dir) Remove(url string) {
	name, ok := strings.CutPrefix(url, URLPrefix)
	if !ok || name == "" {
		return
	}
	// filepath.Base strips any traversal left in the stored URL.
	path := filepath.Join(d.root, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("upload remove failed", "url", url, "error", err)
	}
}

// Root returns the directory files are stored in.
func (d *Dir) Root() string {
	return d.root
}

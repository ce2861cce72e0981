// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from resource titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// nonAlphanumeric matches every run of characters that isn't a lowercase
// letter or digit. Each run becomes a single hyphen.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "Q3 Growth Report!" → "q3-growth-report"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Unique generates a slug for title that is not already taken. On
// collision it appends -2, -3, … until free, so the result is
// deterministic for a given title and taken set. Callers renaming an
// existing record must exclude that record's own slug from taken.
func Unique(title string, taken func(slug string) bool) string {
	s := Generate(title)
	for counter := 2; taken(s); counter++ {
		s = fmt.Sprintf("%s-%d", Generate(title), counter)
	}
	return s
}

// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Testimonial is a customer quote shown on the homepage when Visible is
// true. Initials are derived from the name when not supplied explicitly.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Quote     string    `json:"quote"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Initials  string    `json:"initials"`
	Rating    int       `json:"rating"` // 1..5
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}

// Initials derives display initials from a full name: the first letter of
// each word, uppercased. "Jane van Dyk" → "JVD".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

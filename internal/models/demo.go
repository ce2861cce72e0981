// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DemoStatus labels where a demo request sits in the follow-up pipeline.
// It is a free label, not a workflow: any status may follow any other.
type DemoStatus string

const (
	DemoStatusNew       DemoStatus = "new"
	DemoStatusContacted DemoStatus = "contacted"
	DemoStatusClosed    DemoStatus = "closed"
)

// Valid reports whether the value is a known demo status.
func (s DemoStatus) Valid() bool {
	return s == DemoStatusNew || s == DemoStatusContacted || s == DemoStatusClosed
}

// DemoRequest is a lead captured by the public demo form. Created with
// status "new"; status and notes are editable from the admin dashboard.
type DemoRequest struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Company     string     `json:"company"`
	AdSpend     string     `json:"adSpend"` // self-reported monthly ad spend bracket
	Status      DemoStatus `json:"status"`
	Notes       string     `json:"notes"`
	SubmittedAt time.Time  `json:"submittedAt"`
}

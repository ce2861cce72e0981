// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package analytics

import (
	"fmt"
	"sort"
	"time"
)

// DefaultTimelineLimit caps the activity feed when no limit is given.
const DefaultTimelineLimit = 10

// Event is one entry in the activity timeline.
type Event struct {
	Kind      string    `json:"kind"` // "resource", "demo", or "testimonial"
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
	When      string    `json:"when"` // relative time, e.g. "3h ago"
}

// BuildTimeline merges one event per record across the three collections
// into a reverse-chronological feed capped at limit entries (default 10).
// Timestamp ties keep enumeration order: resources, then demos, then
// testimonials.
func (a *Aggregator) BuildTimeline(limit int) []Event {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}

	var events []Event
	now := time.Now()

	for _, r := range a.resources.List("") {
		events = append(events, Event{
			Kind:      "resource",
			Label:     fmt.Sprintf("New %s: %s", r.TypeLabel(), r.Title),
			Timestamp: r.CreatedAt,
			When:      RelativeTime(r.CreatedAt, now),
		})
	}
	for _, d := range a.demos.List() {
		events = append(events, Event{
			Kind:      "demo",
			Label:     fmt.Sprintf("Demo request from %s (%s)", d.Name, d.Email),
			Timestamp: d.SubmittedAt,
			When:      RelativeTime(d.SubmittedAt, now),
		})
	}
	for _, t := range a.testimonials.List(false) {
		events = append(events, Event{
			Kind:      "testimonial",
			Label:     fmt.Sprintf("Testimonial by %s", t.Name),
			Timestamp: t.CreatedAt,
			When:      RelativeTime(t.CreatedAt, now),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

// RelativeTime formats how long ago t was relative to now, bucketed the
// way the dashboard displays it: "Just now" under a minute, then minutes,
// hours, days, and finally an absolute date past a week.
func RelativeTime(t, now time.Time) string {
	secs := int(now.Sub(t).Seconds())
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	case secs < 604800:
		return fmt.Sprintf("%dd ago", secs/86400)
	default:
		return t.Format("Jan 2, 2006")
	}
}

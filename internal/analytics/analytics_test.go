package analytics

import (
	"fmt"
	"testing"
	"time"

	"brandbio/internal/storage"
	"brandbio/internal/store"
)

// testAggregator returns an Aggregator over fresh stores in a temp
// directory, plus the stores for seeding.
func testAggregator(t *testing.T) (*Aggregator, *store.ResourceStore, *store.DemoStore, *store.TestimonialStore) {
	t.Helper()
	db, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	resources := store.NewResourceStore(db, nil)
	demos := store.NewDemoStore(db)
	testimonials := store.NewTestimonialStore(db)
	return New(resources, demos, testimonials), resources, demos, testimonials
}

// TestComputeStats_Empty verifies all-zero counts for empty collections.
func TestComputeStats_Empty(t *testing.T) {
	a, _, _, _ := testAggregator(t)

	s := a.ComputeStats()
	if s != (Stats{}) {
		t.Errorf("ComputeStats on empty collections = %+v, want all zeros", s)
	}
}

// TestComputeStats_Breakdowns verifies per-type and per-status counts.
func TestComputeStats_Breakdowns(t *testing.T) {
	a, resources, demos, testimonials := testAggregator(t)

	for i, typ := range []string{"case-study", "case-study", "blog"} {
		if _, err := resources.Create(store.CreateResourceInput{
			Type: typ, Title: fmt.Sprintf("R%d", i), Description: "d",
		}); err != nil {
			t.Fatalf("create resource: %v", err)
		}
	}

	d, err := demos.Create(store.CreateDemoInput{Name: "Jane", Email: "j@example.com"})
	if err != nil {
		t.Fatalf("create demo: %v", err)
	}
	if _, err := demos.Create(store.CreateDemoInput{Name: "Bob", Email: "b@example.com"}); err != nil {
		t.Fatalf("create demo: %v", err)
	}
	contacted := "contacted"
	if _, err := demos.Update(d.ID, store.UpdateDemoInput{Status: &contacted}); err != nil {
		t.Fatalf("update demo: %v", err)
	}

	hidden := false
	if _, err := testimonials.Create(store.CreateTestimonialInput{Quote: "q", Name: "A B", Visible: &hidden}); err != nil {
		t.Fatalf("create testimonial: %v", err)
	}
	if _, err := testimonials.Create(store.CreateTestimonialInput{Quote: "q2", Name: "C D"}); err != nil {
		t.Fatalf("create testimonial: %v", err)
	}

	s := a.ComputeStats()
	if s.Resources.Total != 3 || s.Resources.CaseStudies != 2 || s.Resources.Blogs != 1 {
		t.Errorf("resource stats = %+v, want total 3, caseStudies 2, blogs 1", s.Resources)
	}
	if s.Demos.Total != 2 || s.Demos.New != 1 || s.Demos.Contacted != 1 || s.Demos.Closed != 0 {
		t.Errorf("demo stats = %+v, want total 2, new 1, contacted 1", s.Demos)
	}
	if s.Testimonials.Total != 2 || s.Testimonials.Visible != 1 {
		t.Errorf("testimonial stats = %+v, want total 2, visible 1", s.Testimonials)
	}
}

// TestBuildTimeline_CapAndOrder verifies the limit cap and that the feed
// leads with the newest event.
func TestBuildTimeline_CapAndOrder(t *testing.T) {
	a, resources, demos, testimonials := testAggregator(t)

	for i := 0; i < 20; i++ {
		if _, err := resources.Create(store.CreateResourceInput{
			Type: "blog", Title: fmt.Sprintf("Post %d", i), Description: "d",
		}); err != nil {
			t.Fatalf("create resource: %v", err)
		}
	}
	for i := 0; i < 20; i++ {
		if _, err := demos.Create(store.CreateDemoInput{
			Name: fmt.Sprintf("Lead %d", i), Email: "l@example.com",
		}); err != nil {
			t.Fatalf("create demo: %v", err)
		}
	}
	for i := 0; i < 10; i++ {
		if _, err := testimonials.Create(store.CreateTestimonialInput{
			Quote: "q", Name: fmt.Sprintf("Fan %d", i),
		}); err != nil {
			t.Fatalf("create testimonial: %v", err)
		}
	}

	events := a.BuildTimeline(10)
	if len(events) != 10 {
		t.Fatalf("BuildTimeline(10) = %d events, want 10", len(events))
	}

	// First element carries the maximum timestamp of the whole feed.
	for _, e := range events {
		if e.Timestamp.After(events[0].Timestamp) {
			t.Errorf("event %q is newer than the first entry", e.Label)
		}
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.After(events[i-1].Timestamp) {
			t.Errorf("timeline not sorted descending at index %d", i)
		}
	}
}

// TestBuildTimeline_LabelsAndDefaultLimit verifies event labels, kinds,
// and the default cap of 10.
func TestBuildTimeline_LabelsAndDefaultLimit(t *testing.T) {
	a, resources, demos, testimonials := testAggregator(t)

	if _, err := resources.Create(store.CreateResourceInput{
		Type: "case-study", Title: "Big Win", Description: "d",
	}); err != nil {
		t.Fatalf("create resource: %v", err)
	}
	if _, err := demos.Create(store.CreateDemoInput{Name: "Jane", Email: "jane@example.com"}); err != nil {
		t.Fatalf("create demo: %v", err)
	}
	if _, err := testimonials.Create(store.CreateTestimonialInput{Quote: "q", Name: "Bob"}); err != nil {
		t.Fatalf("create testimonial: %v", err)
	}

	events := a.BuildTimeline(0)
	if len(events) != 3 {
		t.Fatalf("BuildTimeline(0) = %d events, want 3", len(events))
	}

	want := map[string]string{
		"resource":    "New case study: Big Win",
		"demo":        "Demo request from Jane (jane@example.com)",
		"testimonial": "Testimonial by Bob",
	}
	for _, e := range events {
		if want[e.Kind] != e.Label {
			t.Errorf("kind %q label = %q, want %q", e.Kind, e.Label, want[e.Kind])
		}
		if e.When == "" {
			t.Errorf("kind %q has empty relative time", e.Kind)
		}
	}
}

// TestRelativeTime covers every formatting bucket.
func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds ago", 30 * time.Second, "Just now"},
		{"under a minute boundary", 59 * time.Second, "Just now"},
		{"minutes ago", 5 * time.Minute, "5m ago"},
		{"under an hour boundary", 59 * time.Minute, "59m ago"},
		{"hours ago", 3 * time.Hour, "3h ago"},
		{"under a day boundary", 23 * time.Hour, "23h ago"},
		{"days ago", 2 * 24 * time.Hour, "2d ago"},
		{"under a week boundary", 6 * 24 * time.Hour, "6d ago"},
		{"absolute past a week", 10 * 24 * time.Hour, "Mar 5, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(now.Add(-tt.ago), now); got != tt.want {
				t.Errorf("RelativeTime(-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}
}

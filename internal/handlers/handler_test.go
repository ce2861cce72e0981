// handler_test.go provides shared helpers for API and public page tests.
// Each test gets a full router over fresh file-backed stores in temp
// directories, so requests exercise the real routing, middleware-free.
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"

	"brandbio/internal/analytics"
	"brandbio/internal/cache"
	"brandbio/internal/render"
	"brandbio/internal/storage"
	"brandbio/internal/store"
	"brandbio/internal/uploads"
)

// testEnv bundles the router and everything behind it.
type testEnv struct {
	router  chi.Router
	uploads *uploads.Dir

	resources    *store.ResourceStore
	demos        *store.DemoStore
	testimonials *store.TestimonialStore
}

// newTestEnv wires an API and Public handler group over temp-dir storage
// and mounts them the way the production router does.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	up, err := uploads.New(t.TempDir())
	if err != nil {
		t.Fatalf("uploads.New: %v", err)
	}

	resources := store.NewResourceStore(db, up)
	demos := store.NewDemoStore(db)
	testimonials := store.NewTestimonialStore(db)
	aggregator := analytics.New(resources, demos, testimonials)
	pageCache := cache.NewPageCache(nil, 0) // disabled in tests

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	api := NewAPI(resources, demos, testimonials, aggregator, up, pageCache, "test-secret", "")
	public := NewPublic(renderer, resources, testimonials, pageCache)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/resources", func(r chi.Router) {
			r.Get("/", api.ResourcesList)
			r.Post("/", api.ResourcesCreate)
			r.Get("/{id}", api.ResourcesGet)
			r.Put("/{id}", api.ResourcesUpdate)
			r.Delete("/{id}", api.ResourcesDelete)
		})
		r.Route("/demos", func(r chi.Router) {
			r.Get("/", api.DemosList)
			r.Post("/", api.DemosCreate)
			r.Put("/{id}", api.DemosUpdate)
			r.Delete("/{id}", api.DemosDelete)
		})
		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", api.TestimonialsList)
			r.Post("/", api.TestimonialsCreate)
			r.Put("/{id}", api.TestimonialsUpdate)
			r.Delete("/{id}", api.TestimonialsDelete)
		})
		r.Get("/stats", api.Stats)
		r.Get("/activity", api.Activity)
		r.Post("/admin/login", api.AdminLogin)
		r.Post("/upload", api.Upload)
	})
	r.Get("/", public.Homepage)
	r.Get("/resources", public.ResourcesPage)
	r.Get("/resources.html", public.LegacyResourcesRedirect)
	r.Get("/resources/{slug}", public.ResourcePage)

	return &testEnv{
		router:       r,
		uploads:      up,
		resources:    resources,
		demos:        demos,
		testimonials: testimonials,
	}
}

// do runs a request through the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// doJSON marshals payload and runs a JSON request.
func (e *testEnv) doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return e.do(t, method, path, bytes.NewReader(data), "application/json")
}

// multipartBody builds a multipart form with text fields and an optional
// image file part carrying an explicit media type.
func multipartBody(t *testing.T, fields map[string]string, imageName, imageType string, imageData []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if imageName != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, imageName))
		hdr.Set("Content-Type", imageType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create image part: %v", err)
		}
		if _, err := part.Write(imageData); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

// decodeBody unmarshals a JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
}

// wantStatus fails the test when the recorded status differs.
func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

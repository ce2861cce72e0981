// store_test.go provides shared helpers for the CRUD service tests. Each
// test gets its own storage rooted in a temp directory.
package store

import (
	"errors"
	"testing"

	"brandbio/internal/storage"
)

// testStorage returns a fresh JSON-file store in a temp directory.
func testStorage(t *testing.T) *storage.Store {
	t.Helper()
	db, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	return db
}

// fakeRemover records Remove calls so tests can assert on image cleanup.
type fakeRemover struct {
	removed []string
}

func (f *fakeRemover) Remove(url string) {
	f.removed = append(f.removed, url)
}

// wantValidationError fails the test unless err is a ValidationError
// naming exactly the given missing fields.
func wantValidationError(t *testing.T, err error, fields ...string) {
	t.Helper()
	ve := asValidationError(t, err)
	wantFieldList(t, "missing", ve.Fields, fields)
}

// wantInvalidError fails the test unless err is a ValidationError naming
// exactly the given invalid fields.
func wantInvalidError(t *testing.T, err error, fields ...string) {
	t.Helper()
	ve := asValidationError(t, err)
	wantFieldList(t, "invalid", ve.Invalid, fields)
}

func asValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got error %v, want ValidationError", err)
	}
	return ve
}

func wantFieldList(t *testing.T, kind string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ValidationError %s fields = %v, want %v", kind, got, want)
	}
	for i, f := range want {
		if got[i] != f {
			t.Fatalf("ValidationError %s fields = %v, want %v", kind, got, want)
		}
	}
}

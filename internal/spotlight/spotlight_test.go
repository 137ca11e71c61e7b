package spotlight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sgx-labs/notegate/internal/metadata"
)

// fakeQuerier serves canned attribute values keyed by attribute name.
type fakeQuerier struct {
	values map[string]any
	paths  []string
}

func (q *fakeQuerier) Query(path, attribute string) (any, error) {
	q.paths = append(q.paths, path)
	return q.values[attribute], nil
}

func TestParseRaw(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want any
	}{
		{"null", "(null)", nil},
		{"empty", "", nil},
		{"scalar", "My Note\n", "My Note"},
		{"quoted scalar", `"My Note"`, "My Note"},
		{"list", "(\n    \"work\",\n    \"draft\"\n)", []any{"work", "draft"}},
		{"empty list", "(\n)", []any(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseRaw(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseRaw(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestNewProcessorQueriesByPath(t *testing.T) {
	q := &fakeQuerier{values: map[string]any{
		"kMDItemDisplayName": "My Note",
	}}
	agg, err := NewProcessor(map[string][]string{
		"title": {"kMDItemDisplayName", "kMDItemTitle"},
	}, q)
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}

	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open note: %v", err)
	}
	defer f.Close()

	rec, err := agg.Process(f)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	// kMDItemTitle is absent from the index; the merge rule filters the
	// nil and collapses the remaining single value to a bare scalar.
	want := metadata.Record{"title": "My Note"}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	for _, p := range q.paths {
		if p != path {
			t.Errorf("querier called with path %q, want %q", p, path)
		}
	}
}

func TestNewProcessorRejectsNilQuerier(t *testing.T) {
	_, err := NewProcessor(map[string][]string{"title": {"kMDItemTitle"}}, nil)
	if !errors.Is(err, metadata.ErrNilLookup) {
		t.Errorf("expected ErrNilLookup, got %v", err)
	}
}

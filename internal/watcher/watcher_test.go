package watcher

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsNote(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"inbox/note.md", true},
		{"inbox/note.markdown", true},
		{"inbox/nested/note.md", true},
		{"inbox/.hidden.md", false},
		{"inbox/note.txt", false},
		{"inbox/note.md.bak", false},
	}
	for _, tc := range cases {
		if got := IsNote(tc.path); got != tc.want {
			t.Errorf("IsNote(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestWalkDirsSkipsHidden(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"a", "a/b", ".git", ".git/objects"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}

	dirs := walkDirs(root)
	want := map[string]bool{
		root:                          true,
		filepath.Join(root, "a"):      true,
		filepath.Join(root, "a", "b"): true,
	}
	if len(dirs) != len(want) {
		t.Fatalf("walkDirs = %v, want %d dirs", dirs, len(want))
	}
	for _, d := range dirs {
		if !want[d] {
			t.Errorf("unexpected dir %q", d)
		}
	}
}

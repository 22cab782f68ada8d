package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.json", ".json"},
		{"dir/a.b.json", ".json"},
		{"dir.json/a", ""},
		{".json", ""},
		{"dir/.json", ""},
		{"a.JSON", ".JSON"},
		{"noext", ""},
	}
	for _, tt := range tests {
		if got := Extension(tt.path); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsCandidate(t *testing.T) {
	tmpDir := t.TempDir()
	write := func(rel string) string {
		p := filepath.Join(tmpDir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		return p
	}

	good := write("a.json")
	upper := write("b.JSON")
	txt := write("c.txt")
	vendored := write("vendor/d.json")
	generated := write("gen/e.generated.json")
	dirWithExt := filepath.Join(tmpDir, "folder.json")
	if err := os.Mkdir(dirWithExt, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	f := Filter{
		Extensions: []string{".json"},
		Exclude:    []string{filepath.Join(tmpDir, "vendor"), "*.generated.json"},
	}
	fsys := NewRealFS()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular json", good, true},
		{"case mismatch", upper, false},
		{"other extension", txt, false},
		{"missing file", filepath.Join(tmpDir, "missing.json"), false},
		{"directory", dirWithExt, false},
		{"excluded dir", vendored, false},
		{"excluded glob", generated, false},
		{"empty path", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCandidate(fsys, tt.path, f); got != tt.want {
				t.Errorf("IsCandidate(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsCandidate_Symlink(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	link := filepath.Join(tmpDir, "link.json")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if !IsCandidate(NewRealFS(), link, Filter{Extensions: []string{".json"}}) {
		t.Error("expected symlink to regular file to be a candidate")
	}
}

func TestIsSubpath(t *testing.T) {
	tests := []struct {
		target, prefix string
		want           bool
	}{
		{"/a/b", "/a", true},
		{"/a/b/c", "/a", true},
		{"/a", "/a", false},
		{"/ab", "/a", false},
		{"/b", "/a", false},
		{"vendor/x.json", "vendor", true},
	}
	for _, tt := range tests {
		if got := IsSubpath(tt.target, tt.prefix); got != tt.want {
			t.Errorf("IsSubpath(%q, %q) = %v, want %v", tt.target, tt.prefix, got, tt.want)
		}
	}
}

package tty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsTerminal_NotAFile(t *testing.T) {
	if IsTerminal(strings.NewReader("a.json\n")) {
		t.Error("strings.Reader reported as terminal")
	}
	if IsTerminal(nil) {
		t.Error("nil reader reported as terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "paths.txt")
	if err := os.WriteFile(p, []byte("a.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}

func TestIsTTY_Nil(t *testing.T) {
	if IsTTY(nil) {
		t.Error("nil file reported as TTY")
	}
}

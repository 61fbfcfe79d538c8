package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSelectPrefersCompleteBundle(t *testing.T) {
	dir := t.TempDir()
	for _, name := range RequiredFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	p := Select(dir)
	if _, ok := p.(*Dir); !ok {
		t.Fatalf("Expected the on-disk bundle, got %s", p.Name())
	}
	if _, err := fs.ReadFile(p.Assets(), "index.html"); err != nil {
		t.Errorf("Expected index.html readable from the bundle: %v", err)
	}
}

func TestSelectFallsBackWhenIncomplete(t *testing.T) {
	dir := t.TempDir()
	// Only one of the required files present.
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	p := Select(dir)
	if _, ok := p.(Fallback); !ok {
		t.Fatalf("Expected the embedded fallback, got %s", p.Name())
	}

	data, err := fs.ReadFile(p.Assets(), "index.html")
	if err != nil {
		t.Fatalf("Expected an embedded index.html: %v", err)
	}
	if !strings.Contains(string(data), "Canvas Notes") {
		t.Error("Embedded fallback page looks wrong")
	}
}

func TestFallbackContainsRequiredFiles(t *testing.T) {
	root := Fallback{}.Assets()
	for _, name := range RequiredFiles {
		if _, err := fs.Stat(root, name); err != nil {
			t.Errorf("Embedded fallback is missing %s: %v", name, err)
		}
	}
}

package notes

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/golang/glog"
)

// Extension is forced onto every note filename.
const Extension = ".txt"

// Store keeps one plain-text file per note under a per-course
// directory. There is no locking: the dashboard assumes a single local
// writer, so concurrent saves of the same note are last-write-wins.
type Store struct {
	root string
}

// NewStore returns a store rooted at dir, typically
// <data-dir>/course_notes. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// SanitizeCourseName reduces a course name to letters, digits, spaces,
// hyphens and underscores, with trailing whitespace trimmed, so it is
// safe as a directory name.
func SanitizeCourseName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == ' ' || r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// List returns every note for the course keyed by filename. A missing
// course directory yields an empty map; a note that cannot be read
// yields an empty string for that one file.
func (s *Store) List(courseName string) map[string]string {
	dir := filepath.Join(s.root, SanitizeCourseName(courseName))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return map[string]string{}
	}

	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			glog.Warningf("could not read note %s: %v", entry.Name(), err)
			files[entry.Name()] = ""
			continue
		}
		files[entry.Name()] = string(content)
	}
	return files
}

// Save overwrites the note, creating the notes root and the course
// directory as needed. It reports failure instead of returning an
// error.
func (s *Store) Save(courseName, filename, content string) bool {
	dir := filepath.Join(s.root, SanitizeCourseName(courseName))
	if err := os.MkdirAll(dir, 0755); err != nil {
		glog.Errorf("could not create notes directory %s: %v", dir, err)
		return false
	}

	path := filepath.Join(dir, sanitizeFilename(filename))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		glog.Errorf("could not write note %s: %v", path, err)
		return false
	}
	return true
}

// Delete removes a single note file. Callers are responsible for
// having checked that the note exists.
func (s *Store) Delete(courseName, filename string) error {
	return os.Remove(filepath.Join(s.root, SanitizeCourseName(courseName), sanitizeFilename(filename)))
}

// sanitizeFilename strips any path components and forces Extension.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name
}

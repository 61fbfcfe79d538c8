package config

import (
	"os"
	"path/filepath"
)

// Version is the version of the running build.
const Version = "1.0.0"

const (
	cacheFileName  = "canvas_courses.json"
	configFileName = "canvas_config.json"
	notesDirName   = "course_notes"
)

// Config contains runtime settings for the dashboard process. It is
// built once in main and passed explicitly; there is no package-level
// instance.
type Config struct {
	// Port is the port the local dashboard server listens on.
	Port int
	// DataDir is the directory holding the course cache, the config
	// file and the notes tree.
	DataDir string
	// AssetDir is the directory holding the front-end bundle. When the
	// bundle is missing or incomplete an embedded fallback page is
	// served instead.
	AssetDir string
	// VersionFeedURL is the plain-text feed consulted by update-check.
	VersionFeedURL string
	// Version is the version reported by update-check.
	Version string
}

func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Port:           8080,
		DataDir:        filepath.Join(home, "Documents", "CanvasData"),
		AssetDir:       "src",
		VersionFeedURL: "https://raw.githubusercontent.com/Giraffe801/CanvasNotes/main/version.txt",
		Version:        Version,
	}
}

// CacheFile is the path of the course-cache snapshot.
func (c *Config) CacheFile() string {
	return filepath.Join(c.DataDir, cacheFileName)
}

// ConfigFile is the path of the shared connection/hidden-set file.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, configFileName)
}

// NotesDir is the root of the per-course notes tree.
func (c *Config) NotesDir() string {
	return filepath.Join(c.DataDir, notesDirName)
}

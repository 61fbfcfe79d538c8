package app

import (
	"fmt"
	"log"
	"os"

	"canvasnotes/internal/assets"
	"canvasnotes/internal/canvas"
	"canvasnotes/internal/config"
	"canvasnotes/internal/notes"
	"canvasnotes/internal/repository"
	"canvasnotes/internal/updater"
)

// App is the explicit application context handed to the HTTP routes:
// one instance owns the repository, the notes store, the updater and
// the asset provider. There are no package-level singletons.
type App struct {
	Cfg       *config.Config
	Store     *repository.ConfigStore
	Courses   *repository.CourseRepository
	Notes     *notes.Store
	Updater   updater.Updater
	Assets    assets.Provider
	InstallID string

	// NewClient builds a Canvas client for config saves and connection
	// tests; tests substitute fakes here.
	NewClient func(baseURL, token string) canvas.Fetcher
}

// New wires the application context from configuration, restoring the
// saved connection, the hidden set and the course cache.
func New(cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %s: %w", cfg.DataDir, err)
	}

	store := repository.NewConfigStore(cfg.ConfigFile())
	repo := repository.NewCourseRepository(cfg.CacheFile(), store)

	a := &App{
		Cfg:       cfg,
		Store:     store,
		Courses:   repo,
		Notes:     notes.NewStore(cfg.NotesDir()),
		Updater:   updater.NewFeedUpdater(cfg.VersionFeedURL, cfg.Version),
		Assets:    assets.Select(cfg.AssetDir),
		InstallID: store.EnsureInstallID(),
		NewClient: func(baseURL, token string) canvas.Fetcher {
			return canvas.NewClient(baseURL, token)
		},
	}

	if conn := store.Load(); conn.CanvasURL != "" && conn.CanvasToken != "" {
		repo.SetClient(a.NewClient(conn.CanvasURL, conn.CanvasToken))
	}

	log.Printf("✅ Loaded %d cached courses from %s (assets: %s)", len(repo.Courses()), cfg.DataDir, a.Assets.Name())
	return a, nil
}

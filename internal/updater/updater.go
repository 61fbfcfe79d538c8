package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"canvasnotes/internal/cnerrors"
	"canvasnotes/internal/models"
)

// Updater checks a release feed for a newer build and, where a
// platform supports it, applies the update in place.
type Updater interface {
	CheckVersion(ctx context.Context) (models.UpdateInfo, error)
	ApplyUpdate(ctx context.Context) error
}

const feedTimeout = 5 * time.Second

// FeedUpdater compares the running version against a one-line
// plain-text version feed.
type FeedUpdater struct {
	feedURL string
	version string
	http    *http.Client
}

func NewFeedUpdater(feedURL, version string) *FeedUpdater {
	return &FeedUpdater{
		feedURL: feedURL,
		version: version,
		http:    &http.Client{Timeout: feedTimeout},
	}
}

// CheckVersion fetches the feed and reports whether it advertises a
// different version. On any failure the returned info still carries
// the running version, so callers can degrade instead of erroring.
func (u *FeedUpdater) CheckVersion(ctx context.Context) (models.UpdateInfo, error) {
	info := models.UpdateInfo{
		CurrentVersion: u.version,
		LatestVersion:  u.version,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.feedURL, nil)
	if err != nil {
		return info, fmt.Errorf("building version request: %w", err)
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return info, fmt.Errorf("version feed unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("version feed returned HTTP %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return info, fmt.Errorf("reading version feed: %w", err)
	}

	latest := strings.TrimSpace(string(body))
	if latest == "" {
		return info, fmt.Errorf("version feed was empty")
	}
	info.LatestVersion = latest
	info.HasUpdate = latest != u.version
	return info, nil
}

// ApplyUpdate is deliberately unimplemented here: the self-replace
// flow is installer territory and differs per OS.
func (u *FeedUpdater) ApplyUpdate(ctx context.Context) error {
	return cnerrors.UpdateUnsupportedError
}

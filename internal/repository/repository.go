package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"

	"canvasnotes/internal/canvas"
	"canvasnotes/internal/models"
	"canvasnotes/internal/term"
)

// CourseRepository owns the in-memory course list and the hidden-id
// set. The mutex guards in-memory state against the server's
// concurrent handlers; writes to the cache and config files are not
// locked and stay last-write-wins for the single local user.
type CourseRepository struct {
	mu          sync.RWMutex
	client      canvas.Fetcher // nil until a connection is configured
	courses     []models.Course
	hidden      map[int]bool
	lastUpdated string

	cachePath string
	config    *ConfigStore
}

// NewCourseRepository restores the hidden set from the config store
// and the course list from the cache snapshot, mirroring startup.
func NewCourseRepository(cachePath string, config *ConfigStore) *CourseRepository {
	r := &CourseRepository{
		hidden:    make(map[int]bool),
		cachePath: cachePath,
		config:    config,
	}
	for _, id := range config.Load().HiddenCourses {
		r.hidden[id] = true
	}
	r.LoadCache()
	return r
}

// SetClient swaps in the remote client used by Refresh, typically
// after a successful configuration save.
func (r *CourseRepository) SetClient(c canvas.Fetcher) {
	r.mu.Lock()
	r.client = c
	r.mu.Unlock()
}

// HasClient reports whether a connection is configured.
func (r *CourseRepository) HasClient() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.client != nil
}

// Refresh replaces the course list from the remote API and persists a
// fresh cache snapshot. It reports failure instead of returning an
// error; a failed fetch leaves both memory and the cache file exactly
// as they were.
func (r *CourseRepository) Refresh(ctx context.Context) bool {
	r.mu.RLock()
	client := r.client
	r.mu.RUnlock()
	if client == nil {
		glog.Warning("refresh requested with no Canvas connection configured")
		return false
	}

	courses, err := client.FetchActiveCourses(ctx)
	if err != nil {
		glog.Errorf("course refresh failed: %v", err)
		return false
	}

	now := time.Now().Format(time.RFC3339)
	r.mu.Lock()
	r.courses = courses
	r.lastUpdated = now
	r.mu.Unlock()

	r.saveCache(courses, now)
	return true
}

// LoadCache restores the last snapshot. Missing or corrupt files leave
// the list empty.
func (r *CourseRepository) LoadCache() {
	data, err := os.ReadFile(r.cachePath)
	if err != nil {
		return
	}
	var snapshot models.CourseCache
	if err := json.Unmarshal(data, &snapshot); err != nil {
		glog.Warningf("corrupt course cache %s: %v", r.cachePath, err)
		return
	}

	// Reapply construction defaults; a hand-edited cache may omit fields.
	for i := range snapshot.Courses {
		c := &snapshot.Courses[i]
		if c.Name == "" {
			c.Name = "Unknown Course"
		}
		if c.WorkflowState == "" {
			c.WorkflowState = "available"
		}
		if c.Term == "" {
			c.Term = term.Fallback
		}
	}

	r.mu.Lock()
	r.courses = snapshot.Courses
	r.lastUpdated = snapshot.LastUpdated
	r.mu.Unlock()
}

func (r *CourseRepository) saveCache(courses []models.Course, updated string) {
	snapshot := models.CourseCache{
		Courses:      courses,
		LastUpdated:  updated,
		TotalCourses: len(courses),
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		glog.Errorf("could not encode course cache: %v", err)
		return
	}
	if err := os.WriteFile(r.cachePath, data, 0644); err != nil {
		glog.Errorf("could not write course cache %s: %v", r.cachePath, err)
	}
}

// Hide suppresses a course from the visible list and persists the
// hidden set immediately.
func (r *CourseRepository) Hide(id int) bool {
	r.mu.Lock()
	r.hidden[id] = true
	ids := r.hiddenIDsLocked()
	r.mu.Unlock()
	return r.config.SaveHiddenCourses(ids)
}

// Unhide restores a course to the visible list and persists the hidden
// set immediately.
func (r *CourseRepository) Unhide(id int) bool {
	r.mu.Lock()
	delete(r.hidden, id)
	ids := r.hiddenIDsLocked()
	r.mu.Unlock()
	return r.config.SaveHiddenCourses(ids)
}

// Hidden reports whether the course id is currently suppressed.
func (r *CourseRepository) Hidden(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hidden[id]
}

// Courses returns a copy of the full course list in remote API order.
func (r *CourseRepository) Courses() []models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// VisibleCourses returns the courses not in the hidden set, order
// preserved from the underlying list.
func (r *CourseRepository) VisibleCourses() []models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	visible := make([]models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		if !r.hidden[c.ID] {
			visible = append(visible, c)
		}
	}
	return visible
}

// LastUpdated returns the timestamp of the last successful refresh, or
// the one restored from the cache snapshot.
func (r *CourseRepository) LastUpdated() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastUpdated
}

// hiddenIDsLocked returns the hidden set sorted so the persisted file
// is stable across runs. Callers must hold mu.
func (r *CourseRepository) hiddenIDsLocked() []int {
	ids := make([]int, 0, len(r.hidden))
	for id := range r.hidden {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

package repository

import (
	"encoding/json"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"canvasnotes/internal/models"
)

// ConfigStore persists the connection settings, the hidden-course set
// and the install identifier in one shared JSON file. Every write is a
// read-merge-write, so a failed save of one key never loses the
// others. File writes are not locked; see CourseRepository.
type ConfigStore struct {
	path string
}

func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Load reads the config file into a typed struct. A missing or corrupt
// file yields a zero config.
func (s *ConfigStore) Load() models.ConnectionConfig {
	var cfg models.ConnectionConfig
	if err := mapstructure.Decode(s.readRaw(), &cfg); err != nil {
		glog.Warningf("malformed config file %s: %v", s.path, err)
		return models.ConnectionConfig{}
	}
	return cfg
}

// SaveConnection persists the connection settings, stamping
// last_updated, and leaves every other key in the file intact.
func (s *ConfigStore) SaveConnection(url, token string) bool {
	return s.merge(map[string]interface{}{
		"canvas_url":   url,
		"canvas_token": token,
		"last_updated": time.Now().Format(time.RFC3339),
	})
}

// SaveHiddenCourses persists the hidden-course set, leaving every
// other key in the file intact.
func (s *ConfigStore) SaveHiddenCourses(ids []int) bool {
	return s.merge(map[string]interface{}{"hidden_courses": ids})
}

// EnsureInstallID returns the persistent install identifier, creating
// and saving one on first run.
func (s *ConfigStore) EnsureInstallID() string {
	if cfg := s.Load(); cfg.InstallID != "" {
		return cfg.InstallID
	}
	id := uuid.New().String()
	if !s.merge(map[string]interface{}{"install_id": id}) {
		glog.Warning("could not persist install id; a new one will be generated next run")
	}
	return id
}

func (s *ConfigStore) readRaw() map[string]interface{} {
	raw := map[string]interface{}{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return raw
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		glog.Warningf("corrupt config file %s: %v", s.path, err)
		return map[string]interface{}{}
	}
	return raw
}

func (s *ConfigStore) merge(fields map[string]interface{}) bool {
	raw := s.readRaw()
	for k, v := range fields {
		raw[k] = v
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		glog.Errorf("could not encode config: %v", err)
		return false
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		glog.Errorf("could not write config file %s: %v", s.path, err)
		return false
	}
	return true
}

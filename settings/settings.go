// Package settings persists the application's single durable key/value pair:
// the GA4 measurement id. Everything else is volatile by design.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	filePath string
	mu       sync.RWMutex
	data     storeData
}

type storeData struct {
	MeasurementID string `json:"measurement_id"`
}

// NewStore loads the settings file if it exists; a missing file is an empty
// store, not an error.
func NewStore(filePath string) (*Store, error) {
	s := &Store{filePath: filePath}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	file, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(file, &s.data)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0644)
}

// MeasurementID returns the persisted GA4 measurement id, empty when unset.
func (s *Store) MeasurementID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.MeasurementID
}

// SetMeasurementID stores and persists the measurement id.
func (s *Store) SetMeasurementID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.MeasurementID = id
	return s.save()
}

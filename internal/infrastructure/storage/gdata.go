package storage

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	progressionObject   = "progression"
	progressionProperty = "counters"
)

// GdataStore persists counters in the per-user application data directory.
// All counters live in one JSON property that is rewritten on every save.
type GdataStore struct {
	manager *gdata.Manager
	values  map[string]int
}

// OpenGdataStore opens (or creates) the save data of appName
func OpenGdataStore(appName string) (*GdataStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data: %w", err)
	}

	s := &GdataStore{manager: manager, values: make(map[string]int)}
	if !manager.ObjectPropExists(progressionObject, progressionProperty) {
		return s, nil
	}

	data, err := manager.LoadObjectProp(progressionObject, progressionProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load progression: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse progression: %w", err)
	}
	return s, nil
}

// LoadInt implements Store
func (s *GdataStore) LoadInt(key string) (int, error) {
	return s.values[key], nil
}

// SaveInt implements Store
func (s *GdataStore) SaveInt(key string, value int) error {
	s.values[key] = value
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to encode progression: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressionObject, progressionProperty, data); err != nil {
		return fmt.Errorf("failed to save progression: %w", err)
	}
	return nil
}

// Package settings persists the user-editable state of make steps.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SettingsStore using one JSON file per step.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the persisted map of stepID. A step that was never saved yields nil, nil.
func (s *Store) Load(root, stepID string) (map[string]any, error) {
	filename := Path(root, stepID)
	//nolint:gosec // Path is constructed from the project root and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "step", stepID)
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsUnmarshalFailed.Error()), "step", stepID)
	}

	return values, nil
}

// Save replaces the persisted map of stepID.
func (s *Store) Save(root, stepID string, values map[string]any) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsMarshalFailed.Error()), "step", stepID)
	}

	filename := Path(root, stepID)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrSettingsCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from the project root and a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "step", stepID)
	}

	return nil
}

// Path returns the settings file of stepID in the project at root.
func Path(root, stepID string) string {
	name := strconv.FormatUint(xxhash.Sum64String(stepID), 16)
	return filepath.Join(root, domain.DefaultStepsPath(), name+".json")
}

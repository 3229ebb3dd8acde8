package ports

// SettingsStore defines the interface for persisting build step settings.
//
//go:generate mockgen -source=settings_store.go -destination=mocks/mock_settings_store.go -package=mocks
type SettingsStore interface {
	// Load returns the persisted map of the given step in the project at root.
	// Returns nil, nil if nothing was saved yet.
	Load(root, stepID string) (map[string]any, error)

	// Save replaces the persisted map of the given step in the project at root.
	Save(root, stepID string, values map[string]any) error
}

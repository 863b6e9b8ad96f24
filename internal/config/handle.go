package config

import "fmt"

// Handle carries the active settings for the running program. It is owned
// by the UI event loop and is not safe for concurrent use.
type Handle struct {
	store    Store
	settings Settings
}

// Open loads settings from store into a new handle.
func Open(store Store) (*Handle, error) {
	s, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &Handle{store: store, settings: s}, nil
}

// NewHandle wraps already loaded settings.
func NewHandle(store Store, s Settings) *Handle {
	return &Handle{store: store, settings: s}
}

// Settings returns a copy of the active settings.
func (h *Handle) Settings() Settings {
	return h.settings
}

// Update validates s, makes it active and persists it. Valid settings stay
// active for this run even when persisting fails; the error is returned.
func (h *Handle) Update(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	h.settings = s
	if h.store == nil {
		return nil
	}
	if err := h.store.Save(s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

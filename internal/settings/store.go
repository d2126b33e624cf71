// Package settings owns the single persisted clock configuration record.
package settings

import (
	"fmt"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/logger"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/validation"
)

// Store reads and writes the settings record under a fixed storage key.
// Every write goes through to the provider before the call returns.
type Store struct {
	provider storage.Provider
	key      string
	current  models.Settings
}

// NewStore returns a store over provider holding the default record until Load is called
func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		key:      constants.StorageKey,
		current:  models.DefaultSettings(),
	}
}

// Load reads the persisted record. A missing key, a read failure or an
// undecodable value all yield the default record; none is reported.
func (s *Store) Load() models.Settings {
	s.current = s.read()
	return s.current
}

func (s *Store) read() models.Settings {
	raw, ok, err := s.provider.Get(s.key)
	if err != nil {
		logger.Warn("settings unreadable, using defaults", "key", s.key, "error", err)
		return models.DefaultSettings()
	}
	if !ok {
		logger.Debug("no stored settings, using defaults", "key", s.key)
		return models.DefaultSettings()
	}

	settings, err := models.DecodeSettings([]byte(raw))
	if err != nil {
		logger.Warn("stored settings are corrupt, using defaults", "key", s.key, "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Current returns the record held in memory
func (s *Store) Current() models.Settings {
	return s.current
}

// Update merges patch onto the current record, persists the result and
// returns it. Sub-records in the patch replace their counterpart whole.
func (s *Store) Update(patch models.Patch) (models.Settings, error) {
	// only the patched fields are checked; stored values are taken as-is
	if err := validation.ValidateSettings(models.DefaultSettings().Apply(patch)); err != nil {
		return s.current, err
	}

	next := s.current.Apply(patch)
	if err := s.persist(next); err != nil {
		return s.current, err
	}
	return s.current, nil
}

// Reset replaces the record with the defaults and persists them
func (s *Store) Reset() (models.Settings, error) {
	if err := s.persist(models.DefaultSettings()); err != nil {
		return s.current, err
	}
	return s.current, nil
}

// Replace validates and persists a complete record
func (s *Store) Replace(settings models.Settings) (models.Settings, error) {
	if err := validation.ValidateSettings(settings); err != nil {
		return s.current, err
	}
	if err := s.persist(settings); err != nil {
		return s.current, err
	}
	return s.current, nil
}

func (s *Store) persist(settings models.Settings) error {
	data, err := models.EncodeSettings(settings)
	if err != nil {
		return err
	}
	if err := s.provider.Set(s.key, string(data)); err != nil {
		logger.Error("failed to persist settings", "error", err)
		return fmt.Errorf("saving settings: %w", err)
	}
	s.current = settings
	logger.Debug("settings saved", "display_mode", settings.DisplayMode, "time_format", settings.TimeFormat)
	return nil
}

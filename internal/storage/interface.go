// Package storage persists string values under string keys.
package storage

import "errors"

var (
	// ErrNotInitialized is returned by Load when the backing store does not exist yet
	ErrNotInitialized = errors.New("storage not initialized, run 'techclock init' first")
	// ErrNotLoaded is returned when Get or Set run before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// Provider is a key-value store with an explicit lifecycle. Init creates or
// upgrades the backing store; Load opens an existing one.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value and whether the key exists
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error

	// GetConfigPath returns the file path or connection string backing the store
	GetConfigPath() string
}

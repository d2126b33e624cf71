package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/techclock/internal/constants"
	clockerrors "github.com/julianstephens/techclock/internal/errors"
	"github.com/julianstephens/techclock/internal/keyring"
	"github.com/julianstephens/techclock/internal/storage"
	"github.com/julianstephens/techclock/internal/storage/postgres"
	"github.com/julianstephens/techclock/internal/storage/sqlite"
	"github.com/julianstephens/techclock/internal/utils"
)

// KeyringConfig is the --config value that reads the connection string from the OS keyring
const KeyringConfig = "keyring"

var keyringGet = keyring.GetConnectionString

// OpenProvider picks a storage backend for a --config value and returns it
// with the directory that holds logs and the lockfile.
//
//	postgres://... or postgresql://...   PostgreSQL
//	keyring                              PostgreSQL, connection string from the OS keyring
//	*.json                               JSON document
//	anything else                        SQLite database file
func OpenProvider(config string, ephemeral bool) (storage.Provider, string, error) {
	defaultDir, err := utils.ExpandPath(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	if ephemeral {
		return storage.NewMemoryStore(), defaultDir, nil
	}

	if config == KeyringConfig {
		connStr, err := keyringGet()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, "", clockerrors.WithHint(err, "store one with 'techclock keyring set <connection-string>'")
			}
			return nil, "", err
		}
		// the keyring is encrypted, so embedded passwords are accepted here
		if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, "", err
		}
		return postgres.New(connStr), defaultDir, nil
	}

	if postgres.IsConnString(config) {
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, "", clockerrors.WithHint(err,
					"keep the password in ~/.pgpass or PGPASSWORD, or store the full string with 'techclock keyring set' and use --config keyring")
			}
			return nil, "", err
		}
		return postgres.New(config), defaultDir, nil
	}

	path, err := utils.ExpandPath(config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return storage.NewJSONStore(path), filepath.Dir(path), nil
	}
	return sqlite.NewStore(path), filepath.Dir(path), nil
}

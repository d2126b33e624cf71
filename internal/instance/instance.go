// Package instance keeps a lockfile in the config directory so that a second
// interactive clock can tell another one is already running.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrHeld is returned by Acquire when a live process owns the lock
var ErrHeld = errors.New("another techclock instance is running")

// Holder describes the process named in a lockfile
type Holder struct {
	PID   int
	Token string
}

// Lock is an acquired lockfile
type Lock struct {
	path  string
	token string
}

// Path returns the lockfile location inside configDir
func Path(configDir string) string {
	return filepath.Join(configDir, constants.LockfileName)
}

// Acquire writes a fresh lockfile. A lockfile left behind by a process that
// is gone, or that is not a techclock process, is replaced.
func Acquire(configDir string) (*Lock, error) {
	path := Path(configDir)
	if holder, ok := Status(configDir); ok {
		return nil, fmt.Errorf("%w (pid %d)", ErrHeld, holder.PID)
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	token := uuid.NewString()
	content := fmt.Sprintf("%d|%s", getpidFunc(), token)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	logger.Debug("instance lock acquired", "path", path)
	return &Lock{path: path, token: token}, nil
}

// Release removes the lockfile if it still carries this lock's token
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := readLockfile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if holder.Token != l.token {
		logger.Warn("lockfile was taken over, leaving it in place", "path", l.path)
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Status reports the live holder of the lock, if any
func Status(configDir string) (Holder, bool) {
	holder, err := readLockfile(Path(configDir))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Debug("ignoring unreadable lockfile", "error", err)
		}
		return Holder{}, false
	}
	if holder.PID == getpidFunc() {
		return Holder{}, false
	}

	process, err := findProcessFunc(holder.PID)
	if err != nil || process == nil {
		return Holder{}, false
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return Holder{}, false
	}
	return holder, true
}

func readLockfile(path string) (Holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return Holder{}, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, errors.New("invalid process ID in lockfile")
	}
	if _, err := uuid.Parse(parts[1]); err != nil {
		return Holder{}, errors.New("invalid token in lockfile")
	}
	return Holder{PID: pid, Token: parts[1]}, nil
}

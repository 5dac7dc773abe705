package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
)

const (
	// FileName is the preference file inside the state dir.
	FileName = "prefs.json"

	lockFileName = ".prefs.lock"
)

// LockTimeout is the maximum time to wait for the file lock. If exceeded,
// writes proceed without locking (fail-open) so the UI never hangs on a
// stale lock.
const LockTimeout = 100 * time.Millisecond

// FileStore keeps preferences as a flat JSON object on disk.
//
// Each Set is a locked read-modify-write that replaces the file atomically,
// so concurrent processes see either the old or the new file.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the state directory path.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the full path to the preference file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, FileName)
}

func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, lockFileName)
}

// Get implements Store. A missing file reads as absent; a corrupt file is an
// error.
func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set implements Store.
func (s *FileStore) Set(key, value string) error {
	lock, err := s.acquireLock()
	if err != nil {
		return err
	}
	if lock != nil {
		defer func() { _ = lock.Unlock() }()
	}

	values, err := s.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future write.
		values = make(map[string]string)
	}
	values[key] = value
	return s.save(values)
}

// All returns every stored preference.
func (s *FileStore) All() (map[string]string, error) {
	return s.load()
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.Path()) //nolint:gosec // G304: Path is from trusted config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path(), err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path(), err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	data = append(data, '\n')

	// Unique temp name (PID + timestamp) so fail-open writers don't collide.
	tmpPath := fmt.Sprintf("%s.%d.%d.tmp", s.Path(), os.Getpid(), time.Now().UnixNano())
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	// os.Rename fails on Windows if the destination exists.
	if runtime.GOOS == "windows" {
		_ = os.Remove(s.Path())
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// acquireLock returns nil without error when the lock is not obtained
// within LockTimeout.
func (s *FileStore) acquireLock() (*flock.Flock, error) {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	fl := flock.New(s.lockPath())

	ctx, cancel := context.WithTimeout(context.Background(), LockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 10*time.Millisecond)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock prefs: %w", err)
	}
	if !locked {
		return nil, nil
	}
	return fl, nil
}

package participation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persistence boundary for participation history.
// Load never fails: unreadable or corrupt state degrades to an empty
// history so the tracker can never block the rest of the tool.
// Save errors always propagate — write failures must not lose data
// silently.
type Store interface {
	Load() History
	Save(History) error
}

// FileStore persists the history as a single JSON file.
type FileStore struct {
	path string
}

// Open creates a FileStore at path, creating the parent directory and
// an empty history file on first use.
func Open(path string) (*FileStore, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.Save(History{}); err != nil {
			return nil, fmt.Errorf("initialize history file: %w", err)
		}
	}
	return s, nil
}

// Load reads the persisted history. A missing file, unreadable file,
// invalid JSON, or content that fails the schema check all yield an
// empty history.
func (s *FileStore) Load() History {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return History{}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return History{}
	}
	if err := validateHistory(parsed); err != nil {
		return History{}
	}

	var h History
	if err := json.Unmarshal(raw, &h); err != nil {
		return History{}
	}
	if h == nil {
		h = History{}
	}
	return h
}

// Save serializes the full history back to disk, overwriting prior
// content.
func (s *FileStore) Save(h History) error {
	data, err := json.MarshalIndent(h, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// DefaultDataPath resolves the history file path in priority order:
// 1. TUCOMP_DATA environment variable
// 2. $XDG_DATA_HOME/tucomp/participation.json
// 3. ~/.local/share/tucomp/participation.json
func DefaultDataPath() (string, error) {
	if p := os.Getenv("TUCOMP_DATA"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tucomp", "participation.json")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

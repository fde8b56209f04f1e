package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileMedium keeps the session entries in a JSON file.
type FileMedium struct {
	path string
}

// NewFileStore returns a durable store backed by the JSON file at path.
// Separate stores (or processes) on the same path observe each other's writes.
func NewFileStore(path string, options ...StoreOption) (*PersistentStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("session state file path is required")
	}
	return NewStore(&FileMedium{path: path}, options...), nil
}

func (m *FileMedium) Load() (map[string]string, error) {
	b, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(b) == 0 {
		return map[string]string{}, nil
	}
	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decode session file: %w: %w", ErrCorruptMedium, err)
	}
	return entries, nil
}

func (m *FileMedium) Save(entries map[string]string) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("mkdir session dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

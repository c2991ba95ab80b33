// Package persist stores run and global snapshots as JSON files. A corrupt
// or missing snapshot degrades to "nothing saved" so startup never blocks on
// bad data.
package persist

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/okn1ce/VoidBJ/internal/game"
)

const (
	runFile    = "run.json"
	globalFile = "global.json"
)

// FileStore implements game.Store on top of a data directory.
type FileStore struct {
	dataDir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) runPath() string    { return filepath.Join(s.dataDir, runFile) }
func (s *FileStore) globalPath() string { return filepath.Join(s.dataDir, globalFile) }

// SaveRun writes the run snapshot.
func (s *FileStore) SaveRun(snap *game.RunSnapshot) error {
	return writeJSON(s.runPath(), snap)
}

// LoadRun returns the saved run snapshot, or (nil, nil) when absent or
// unreadable, meaning no run in progress.
func (s *FileStore) LoadRun() (*game.RunSnapshot, error) {
	var snap game.RunSnapshot
	if !readJSON(s.runPath(), &snap) {
		return nil, nil
	}
	return &snap, nil
}

// ClearRun deletes the run snapshot. Deleting an absent snapshot is not an
// error.
func (s *FileStore) ClearRun() error {
	err := os.Remove(s.runPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveGlobal writes the cross-run snapshot.
func (s *FileStore) SaveGlobal(snap *game.GlobalSnapshot) error {
	return writeJSON(s.globalPath(), snap)
}

// LoadGlobal returns the saved cross-run snapshot, or (nil, nil) when absent
// or unreadable.
func (s *FileStore) LoadGlobal() (*game.GlobalSnapshot, error) {
	var snap game.GlobalSnapshot
	if !readJSON(s.globalPath(), &snap) {
		return nil, nil
	}
	return &snap, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// readJSON reports whether the file existed and parsed cleanly.
func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

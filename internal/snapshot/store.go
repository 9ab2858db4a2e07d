package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Artifact file names inside a snapshot directory. Presentation layers read
// these directly, so the set and names are part of the contract.
const (
	devicesFile  = "devices.json"
	currentFile  = "current_data.json"
	historyFile  = "historical_data.csv"
	simCardsFile = "sim_cards.json"
	statsFile    = "stats.json"
)

// Store persists snapshots to an opaque target location.
type Store interface {
	Save(snap *Snapshot, target string) error
	Load(target string) (*Snapshot, error)
}

// FileStore persists a snapshot as flat files in a directory.
type FileStore struct{}

// NewFileStore constructs a FileStore.
func NewFileStore() *FileStore { return &FileStore{} }

// Save writes all snapshot artifacts under target, recomputing the summary
// stats first. A generation id and timestamp are stamped if the run did not
// set them.
func (s *FileStore) Save(snap *Snapshot, target string) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if snap.Stats.GenerationID == "" {
		snap.Stats.GenerationID = uuid.NewString()
	}
	if snap.Stats.GeneratedAt.IsZero() {
		snap.Stats.GeneratedAt = time.Now().UTC().Truncate(time.Second)
	}
	snap.Stats = snap.ComputeStats()

	if err := os.MkdirAll(target, 0o755); err != nil {
		return &PersistenceError{Op: "create " + target, Err: err}
	}
	if err := writeJSON(filepath.Join(target, devicesFile), snap.Devices); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(target, currentFile), snap.Current); err != nil {
		return err
	}
	if err := writeHistoryCSV(filepath.Join(target, historyFile), snap.History); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(target, simCardsFile), snap.SimCards); err != nil {
		return err
	}
	return writeJSON(filepath.Join(target, statsFile), snap.Stats)
}

// Load reads a snapshot back from target. A missing directory or artifact
// yields ErrNotFound so callers can regenerate; a present but unreadable
// artifact fails loudly with a PersistenceError.
func (s *FileStore) Load(target string) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := readJSON(filepath.Join(target, devicesFile), &snap.Devices); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(target, currentFile), &snap.Current); err != nil {
		return nil, err
	}
	history, err := readHistoryCSV(filepath.Join(target, historyFile))
	if err != nil {
		return nil, err
	}
	snap.History = history
	if err := readJSON(filepath.Join(target, simCardsFile), &snap.SimCards); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(target, statsFile), &snap.Stats); err != nil {
		return nil, err
	}
	return snap, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode " + filepath.Base(path), Err: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &PersistenceError{Op: "write " + filepath.Base(path), Err: err}
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: missing %s", ErrNotFound, filepath.Base(path))
	}
	if err != nil {
		return &PersistenceError{Op: "read " + filepath.Base(path), Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &PersistenceError{Op: "decode " + filepath.Base(path), Err: err}
	}
	return nil
}

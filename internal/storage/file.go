package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileStore persists each Snapshot as one file named by its ID under Dir.
// This is the always-available backend: no external service required, a
// direct realization of spec.md §6's flat, one-line-per-cell format.
type FileStore struct {
	Dir string
}

// NewFileStore ensures dir exists and returns a FileStore rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.Dir, id+".snapshot")
}

// Save writes the snapshot's encoded Field to its own file, overwriting
// any prior save under the same ID.
func (s *FileStore) Save(snap Snapshot) error {
	data, err := encode(snap.Field)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
	}
	if err := os.WriteFile(s.path(snap.ID), data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", snap.ID, err)
	}
	log.Info().Str("snapshot_id", snap.ID).Str("dir", s.Dir).Msg("snapshot saved to file")
	return nil
}

// Load reads and decodes the snapshot with the given ID.
func (s *FileStore) Load(id string) (Snapshot, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", id, err)
	}
	f, err := decode(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return Snapshot{ID: id, Field: f}, nil
}

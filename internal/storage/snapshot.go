// Package storage persists Field snapshots outside the process: a flat
// file backend (always available, the format spec.md §6 defines) and an
// optional Postgres backend for multi-session durability.
package storage

import (
	"bytes"
	"strings"

	"github.com/google/uuid"

	"sudoku-deduce/internal/core"
)

// Snapshot is a Field captured at a point in time, addressable by a
// generated ID so an external caller (a solve session, a driver loop) can
// save and later reload board state without owning the Field itself.
type Snapshot struct {
	ID    string
	Field *core.Field
}

// NewSnapshot captures f under a fresh ID.
func NewSnapshot(f *core.Field) Snapshot {
	return Snapshot{ID: uuid.NewString(), Field: f}
}

// Store is anything that can save and load Snapshots by ID.
type Store interface {
	Save(s Snapshot) error
	Load(id string) (Snapshot, error)
}

// encode/decode share the core.Field.Save/Load line format between the
// file and Postgres backends, so both store the same bytes spec.md §6
// describes; only the addressing differs.
func encode(f *core.Field) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*core.Field, error) {
	// Load matches records to cells by Position, so the field being
	// loaded into must already have its 81 Positions populated; a bare
	// &core.Field{} leaves every cell's Position at the zero value.
	f, err := core.NewFieldFromString(strings.Repeat("0", 81))
	if err != nil {
		return nil, err
	}
	if err := f.Load(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return f, nil
}

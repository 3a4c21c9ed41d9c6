package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// fieldSnapshotRow is the field_snapshots table shape: one row per saved
// Field, the encoded body carrying the same per-cell records the file
// backend writes, addressed by the snapshot's uuid.
type fieldSnapshotRow struct {
	bun.BaseModel `bun:"table:field_snapshots"`

	ID        string    `bun:"id,pk"`
	Body      []byte    `bun:"body"`
	UpdatedAt time.Time `bun:"updated_at"`
}

// PostgresStore is the optional, multi-session-durable backend, selected
// when the caller has a DATABASE_URL to hand it. It is not required for
// single-process use; FileStore covers that case on its own.
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore opens a connection using dsn and ensures the
// field_snapshots table exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if _, err := db.NewCreateTable().
		Model((*fieldSnapshotRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("create field_snapshots table: %w", err)
	}

	log.Info().Msg("postgres snapshot store ready")
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Save(snap Snapshot) error {
	data, err := encode(snap.Field)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
	}
	row := &fieldSnapshotRow{ID: snap.ID, Body: data, UpdatedAt: time.Now()}
	_, err = s.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("body = EXCLUDED.body").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(context.Background())
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", snap.ID, err)
	}
	return nil
}

func (s *PostgresStore) Load(id string) (Snapshot, error) {
	row := new(fieldSnapshotRow)
	err := s.db.NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(context.Background())
	if err != nil {
		return Snapshot{}, fmt.Errorf("select snapshot %s: %w", id, err)
	}
	f, err := decode(row.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return Snapshot{ID: id, Field: f}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

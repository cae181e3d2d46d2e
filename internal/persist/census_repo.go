package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
)

// CensusEntity is one entity observed during a census.
type CensusEntity struct {
	EntityID int
	Type     string
	Position mcfs.Position
	Health   float64
	Living   bool
}

// CensusSnapshot is a full census of one world at one moment.
type CensusSnapshot struct {
	World    string
	TakenAt  time.Time
	Entities []CensusEntity
}

// CensusSummary describes a stored census without its entity rows.
type CensusSummary struct {
	ID          int64
	World       string
	TakenAt     time.Time
	EntityCount int
}

type CensusRepo struct {
	db *DB
}

func NewCensusRepo(db *DB) *CensusRepo {
	return &CensusRepo{db: db}
}

// Record stores snap in a single transaction and returns its id.
func (r *CensusRepo) Record(ctx context.Context, snap CensusSnapshot) (int64, error) {
	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("census begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO census (world, taken_at, entity_count) VALUES (?, ?, ?)`,
		snap.World, snap.TakenAt.UnixMilli(), len(snap.Entities),
	)
	if err != nil {
		return 0, fmt.Errorf("census insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("census id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO census_entities (census_id, entity_id, type, x, y, z, health, living)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("census prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range snap.Entities {
		if _, err := stmt.ExecContext(ctx,
			id, e.EntityID, e.Type, e.Position.X, e.Position.Y, e.Position.Z, e.Health, e.Living,
		); err != nil {
			return 0, fmt.Errorf("census entity %d: %w", e.EntityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("census commit: %w", err)
	}
	return id, nil
}

// Latest returns the most recent census of world, or nil if there is none.
func (r *CensusRepo) Latest(ctx context.Context, world string) (*CensusSummary, error) {
	var (
		s       CensusSummary
		takenAt int64
	)
	err := r.db.SQL.QueryRowContext(ctx,
		`SELECT id, world, taken_at, entity_count FROM census
		 WHERE world = ? ORDER BY taken_at DESC, id DESC LIMIT 1`, world,
	).Scan(&s.ID, &s.World, &takenAt, &s.EntityCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest census: %w", err)
	}
	s.TakenAt = time.UnixMilli(takenAt)
	return &s, nil
}

// Entities returns the stored entity rows of a census ordered by entity id.
func (r *CensusRepo) Entities(ctx context.Context, censusID int64) ([]CensusEntity, error) {
	rows, err := r.db.SQL.QueryContext(ctx,
		`SELECT entity_id, type, x, y, z, health, living FROM census_entities
		 WHERE census_id = ? ORDER BY entity_id`, censusID)
	if err != nil {
		return nil, fmt.Errorf("census entities: %w", err)
	}
	defer rows.Close()

	var out []CensusEntity
	for rows.Next() {
		var e CensusEntity
		if err := rows.Scan(&e.EntityID, &e.Type, &e.Position.X, &e.Position.Y, &e.Position.Z, &e.Health, &e.Living); err != nil {
			return nil, fmt.Errorf("scan census entity: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

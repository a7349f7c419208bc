package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/prasetyadi/dealer-restock/internal/normalize"
	"github.com/prasetyadi/dealer-restock/internal/planner"
)

// SnapshotRepository reads mirrored feed rows from Postgres. Feed payloads
// are stored as jsonb exactly as the document store emitted them; the
// normalizer deals with their loose keying downstream.
type SnapshotRepository struct {
	db *DB
}

func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// LoadFeeds loads all feed categories for one dealer concurrently.
func (r *SnapshotRepository) LoadFeeds(ctx context.Context, dealer string) (*planner.RawFeeds, error) {
	feeds := &planner.RawFeeds{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recs, err := r.selectRecords(gctx,
			`SELECT payload FROM feed_schedule_orders WHERE dealer = $1`, dealer)
		if err != nil {
			return fmt.Errorf("load schedule feed: %w", err)
		}
		feeds.Schedule = recs
		return nil
	})

	g.Go(func() error {
		units, err := r.selectYardUnits(gctx, dealer)
		if err != nil {
			return fmt.Errorf("load yard feed: %w", err)
		}
		feeds.Yard = units
		return nil
	})

	g.Go(func() error {
		recs, err := r.selectRecords(gctx,
			`SELECT payload FROM feed_ship_events WHERE dealer = $1 AND kind = 'pgi'`, dealer)
		if err != nil {
			return fmt.Errorf("load pgi feed: %w", err)
		}
		feeds.PGI = recs
		return nil
	})

	g.Go(func() error {
		recs, err := r.selectRecords(gctx,
			`SELECT payload FROM feed_ship_events WHERE dealer = $1 AND kind = 'handover'`, dealer)
		if err != nil {
			return fmt.Errorf("load handover feed: %w", err)
		}
		feeds.Handover = recs
		return nil
	})

	g.Go(func() error {
		recs, err := r.selectRecords(gctx, `SELECT payload FROM ref_model_tiers`)
		if err != nil {
			return fmt.Errorf("load model tier reference: %w", err)
		}
		feeds.ModelTiers = recs
		return nil
	})

	g.Go(func() error {
		recs, err := r.selectRecords(gctx, `SELECT payload FROM ref_tier_targets`)
		if err != nil {
			return fmt.Errorf("load tier target reference: %w", err)
		}
		feeds.TierTargets = recs
		return nil
	})

	g.Go(func() error {
		recs, err := r.selectRecords(gctx, `SELECT payload FROM ref_capacity`)
		if err != nil {
			return fmt.Errorf("load capacity reference: %w", err)
		}
		feeds.Capacity = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return feeds, nil
}

func (r *SnapshotRepository) selectRecords(ctx context.Context, query string, args ...any) ([]normalize.Record, error) {
	release, err := r.db.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var payloads [][]byte
	if err := r.db.SelectContext(ctx, &payloads, query, args...); err != nil {
		return nil, err
	}

	recs := make([]normalize.Record, 0, len(payloads))
	for _, payload := range payloads {
		var rec normalize.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			// One malformed payload never fails the snapshot.
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *SnapshotRepository) selectYardUnits(ctx context.Context, dealer string) (map[string]normalize.Record, error) {
	release, err := r.db.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var rows []struct {
		UnitID  string `db:"unit_id"`
		Payload []byte `db:"payload"`
	}
	query := `SELECT unit_id, payload FROM feed_yard_units WHERE dealer = $1`
	if err := r.db.SelectContext(ctx, &rows, query, dealer); err != nil {
		return nil, err
	}

	units := make(map[string]normalize.Record, len(rows))
	for _, row := range rows {
		var rec normalize.Record
		if err := json.Unmarshal(row.Payload, &rec); err != nil {
			continue
		}
		units[row.UnitID] = rec
	}
	return units, nil
}

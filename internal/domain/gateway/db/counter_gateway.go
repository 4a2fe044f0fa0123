package db

import (
	"fmt"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/model"
)

// CounterGateway persists per-gif read counters in the GifCounter table.
type CounterGateway interface {
	// FindByGifID returns the counter row for the given gif, or nil when the
	// gif has never been counted.
	FindByGifID(gifID string) (*entity.GifCounter, error)

	// Upsert writes a counter row. A row with a StorageID updates in place,
	// a row without one inserts; the returned row carries the StorageID
	// assigned by the store.
	Upsert(counter entity.GifCounter) (*entity.GifCounter, error)

	// FindAll returns every counter row. No pagination is applied, the
	// table is assumed small enough for a full scan.
	FindAll() ([]entity.GifCounter, error)
}

type harperCounterGateway struct {
	store Executor
	table string
}

// NewHarperCounterGateway creates a counter gateway over the given HarperDB
// table.
func NewHarperCounterGateway(store Executor, table string) CounterGateway {
	return &harperCounterGateway{store: store, table: table}
}

// FindByGifID returns the counter row for the given gif, or nil when the gif
// has never been counted. Multiple rows for one gif id are a data hazard, the
// first match wins.
func (g *harperCounterGateway) FindByGifID(gifID string) (*entity.GifCounter, error) {
	var rows []entity.GifCounter
	if err := g.store.SearchByValue(g.table, "gif_id", gifID, searchLimit, 0, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	counter := rows[0]
	return &counter, nil
}

// Upsert writes a counter row and fills in the store-assigned StorageID for
// inserts.
func (g *harperCounterGateway) Upsert(counter entity.GifCounter) (*entity.GifCounter, error) {
	if counter.GifID == "" {
		return nil, fmt.Errorf("%w: gif id is required to upsert a counter", model.ErrValidation)
	}

	result, err := g.store.Upsert(g.table, []entity.GifCounter{counter})
	if err != nil {
		return nil, err
	}

	if counter.StorageID == "" && len(result.UpsertedHashes) > 0 {
		counter.StorageID = result.UpsertedHashes[0]
	}

	return &counter, nil
}

// FindAll returns every counter row.
func (g *harperCounterGateway) FindAll() ([]entity.GifCounter, error) {
	var rows []entity.GifCounter
	if err := g.store.ScanAll(g.table, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

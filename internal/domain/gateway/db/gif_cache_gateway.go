package db

import (
	"fmt"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/model"
)

// searchLimit bounds every cache lookup; one row is expected per key, extra
// rows for the same key are a data hazard tolerated by taking the first.
const searchLimit = 20

// GifCacheGateway persists fetched gifs and search results in the store's
// TTL'd cache tables. Expiry is enforced by the store, this gateway only
// reads and writes entries.
type GifCacheGateway interface {
	// FindByGifID returns the cached gif for the given id, or nil on a miss.
	FindByGifID(gifID string) (*entity.Gif, error)

	// SaveGif caches a freshly fetched gif under its id.
	SaveGif(gif entity.Gif) error

	// FindBySearchTerm returns the cached result list for the exact term,
	// or nil on a miss.
	FindBySearchTerm(term string) ([]entity.Gif, error)

	// SaveSearch caches a search result list under the exact term.
	SaveSearch(term string, gifs []entity.Gif) error
}

type gifCacheRecord struct {
	StorageID string     `json:"id,omitempty"`
	GifID     string     `json:"gif_id"`
	Gif       entity.Gif `json:"gif"`
}

type searchCacheRecord struct {
	StorageID  string       `json:"id,omitempty"`
	SearchTerm string       `json:"searchTerm"`
	Gifs       []entity.Gif `json:"gifs"`
}

type harperGifCacheGateway struct {
	store       Executor
	gifTable    string
	searchTable string
}

// NewHarperGifCacheGateway creates a cache gateway over the given HarperDB
// tables.
func NewHarperGifCacheGateway(store Executor, gifTable, searchTable string) GifCacheGateway {
	return &harperGifCacheGateway{
		store:       store,
		gifTable:    gifTable,
		searchTable: searchTable,
	}
}

// FindByGifID returns the cached gif for the given id, or nil on a miss.
// An expired or torn row with an empty gif id counts as a miss.
func (g *harperGifCacheGateway) FindByGifID(gifID string) (*entity.Gif, error) {
	var rows []gifCacheRecord
	if err := g.store.SearchByValue(g.gifTable, "gif_id", gifID, searchLimit, 0, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 || rows[0].Gif.ID == "" {
		return nil, nil
	}

	gif := rows[0].Gif
	return &gif, nil
}

// SaveGif caches a freshly fetched gif under its id.
func (g *harperGifCacheGateway) SaveGif(gif entity.Gif) error {
	if gif.ID == "" {
		return fmt.Errorf("%w: gif id is required to cache a gif", model.ErrValidation)
	}

	records := []gifCacheRecord{{GifID: gif.ID, Gif: gif}}
	_, err := g.store.Upsert(g.gifTable, records)
	return err
}

// FindBySearchTerm returns the cached result list for the exact term, or nil
// on a miss. A row holding an empty list counts as a miss.
func (g *harperGifCacheGateway) FindBySearchTerm(term string) ([]entity.Gif, error) {
	var rows []searchCacheRecord
	if err := g.store.SearchByValue(g.searchTable, "searchTerm", term, searchLimit, 0, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 || len(rows[0].Gifs) == 0 {
		return nil, nil
	}

	return rows[0].Gifs, nil
}

// SaveSearch caches a search result list under the exact term.
func (g *harperGifCacheGateway) SaveSearch(term string, gifs []entity.Gif) error {
	records := []searchCacheRecord{{SearchTerm: term, Gifs: gifs}}
	_, err := g.store.Upsert(g.searchTable, records)
	return err
}

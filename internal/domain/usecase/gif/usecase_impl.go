package gif

import (
	"fmt"
	"sort"
	"time"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/gateway/api"
	"gif-api/internal/domain/gateway/db"
	"gif-api/internal/domain/model"
	"gif-api/pkg/log"
	"gif-api/pkg/msg"
	"gif-api/pkg/util/syncutils"
)

type gifUseCase struct {
	searchLimit    int
	apiGateway     api.GiphyGateway
	cacheGateway   db.GifCacheGateway
	counterGateway db.CounterGateway

	// counterLocks serializes read-modify-write counter updates per gif id
	// within this process. Concurrent increments from other instances can
	// still race, the store offers no atomic increment.
	counterLocks syncutils.KeyedMutex
}

func NewGifUseCase(searchLimit int, apiGateway api.GiphyGateway, cacheGateway db.GifCacheGateway, counterGateway db.CounterGateway) UseCase {
	return &gifUseCase{
		searchLimit:    searchLimit,
		apiGateway:     apiGateway,
		cacheGateway:   cacheGateway,
		counterGateway: counterGateway,
	}
}

// GetByID returns the gif with the given id, cache-aside against the gif
// cache table. An external read counts against the gif's counter whether or
// not the cache hits; a counter failure never blocks the gif itself.
func (uc *gifUseCase) GetByID(gifID string, external bool) (*entity.Gif, error) {
	if gifID == "" {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, msg.GetMessage("gif.error.empty-id"))
	}

	if external {
		if err := uc.incrementCounter(gifID); err != nil {
			log.Warnf(msg.GetMessage("gif.counter.increment-failed", gifID, err))
		}
	}

	cached, err := uc.cacheGateway.FindByGifID(gifID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
	}
	if cached != nil {
		log.Debugf(msg.GetMessage("gif.cache.hit-id", gifID))
		return cached, nil
	}

	log.Infof(msg.GetMessage("gif.cache.miss-id", gifID))

	fetched, err := uc.apiGateway.GetByID(gifID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
	}

	// Not-found is returned uncached so the next request retries upstream.
	if fetched == nil {
		log.Infof(msg.GetMessage("gif.upstream.not-found", gifID))
		return nil, nil
	}

	if err := uc.cacheGateway.SaveGif(*fetched); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
	}

	return fetched, nil
}

// Search returns the gifs matching the exact term, cache-aside against the
// search cache table. The term is not normalized, each distinct spelling is
// its own cache key.
func (uc *gifUseCase) Search(term string, limit int) ([]entity.Gif, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, msg.GetMessage("gif.error.empty-term"))
	}
	if limit <= 0 {
		limit = uc.searchLimit
	}

	cached, err := uc.cacheGateway.FindBySearchTerm(term)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
	}
	if cached != nil {
		log.Infof(msg.GetMessage("gif.cache.hit-search", term, len(cached)))
		return cached, nil
	}

	log.Infof(msg.GetMessage("gif.cache.miss-search", term))

	gifs, err := uc.apiGateway.Search(term, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
	}

	// Empty results stay uncached, matching the by-id not-found policy.
	if len(gifs) > 0 {
		if err := uc.cacheGateway.SaveSearch(term, gifs); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
		}
	}

	return gifs, nil
}

// SearchWithRelevancy decorates Search with counter data: results are merged
// with their read counters and re-sorted descending. Ties keep search order.
func (uc *gifUseCase) SearchWithRelevancy(term string) ([]entity.RelevantGif, error) {
	gifs, err := uc.Search(term, 0)
	if err != nil {
		return nil, err
	}

	counters, err := uc.counterGateway.FindAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCounter, err)
	}

	countByGifID := make(map[string]int, len(counters))
	for _, counter := range counters {
		countByGifID[counter.GifID] = counter.Counter
	}

	relevant := make([]entity.RelevantGif, 0, len(gifs))
	for _, g := range gifs {
		relevant = append(relevant, entity.RelevantGif{
			Gif:     g,
			Counter: countByGifID[g.ID],
		})
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Counter > relevant[j].Counter
	})

	return relevant, nil
}

// incrementCounter bumps the read counter for the given gif by one, carrying
// the store row id forward so repeated increments update a single row.
func (uc *gifUseCase) incrementCounter(gifID string) error {
	uc.counterLocks.Lock(gifID)
	defer uc.counterLocks.Unlock(gifID)

	current, err := uc.counterGateway.FindByGifID(gifID)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrCounter, err)
	}

	next := entity.GifCounter{
		GifID:     gifID,
		Counter:   1,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if current != nil {
		next.Counter = current.Counter + 1
		next.StorageID = current.StorageID
	}

	if _, err := uc.counterGateway.Upsert(next); err != nil {
		return fmt.Errorf("%w: %v", model.ErrCounter, err)
	}

	log.Debugf(msg.GetMessage("gif.counter.incremented", gifID, next.Counter))
	return nil
}

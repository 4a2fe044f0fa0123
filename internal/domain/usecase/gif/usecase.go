package gif

import (
	"gif-api/internal/domain/entity"
)

type UseCase interface {
	// GetByID returns the gif with the given id, serving from the cache
	// table when possible and populating it from Giphy on a miss.
	// external marks reads triggered by an end user; those increment the
	// gif's read counter before the cache check. Returns nil when the gif
	// does not exist upstream; not-found results are never cached.
	GetByID(gifID string, external bool) (*entity.Gif, error)

	// Search returns the gifs matching the exact term, cache-aside against
	// the search cache table. limit overrides the configured search limit
	// when positive. Empty results are returned but not cached.
	Search(term string, limit int) ([]entity.Gif, error)

	// SearchWithRelevancy runs Search and re-orders the results by read
	// counter, descending. Gifs never read rank with counter 0.
	SearchWithRelevancy(term string) ([]entity.RelevantGif, error)
}

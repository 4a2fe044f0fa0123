package api

import (
	"gif-api/internal/domain/entity"
)

// GiphyGateway defines the interface for gif lookups against the Giphy API.
type GiphyGateway interface {
	// GetByID fetches a single gif record by its Giphy id.
	// Returns nil without error when Giphy reports the gif does not exist.
	GetByID(gifID string) (*entity.Gif, error)

	// Search fetches up to limit gifs matching the search term, in Giphy's
	// result order. An empty result is not an error.
	Search(term string, limit int) ([]entity.Gif, error)
}

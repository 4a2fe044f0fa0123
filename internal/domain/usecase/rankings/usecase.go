package rankings

import (
	"gif-api/internal/domain/entity"
)

type UseCase interface {
	// GetRankings serves the latest warmup snapshot when one is present
	// and falls back to ComputeRankings otherwise.
	GetRankings() ([]entity.RankedGif, error)

	// ComputeRankings returns every counted gif ordered from most to least
	// read, with dense 1-based ranks. Display metadata is resolved per gif
	// without touching the counters; a gif whose metadata cannot be
	// resolved is still ranked, just without a URL.
	ComputeRankings() ([]entity.RankedGif, error)

	// WarmRankings computes the rankings and stores the snapshot in the
	// warmup cache. Resolving metadata re-populates the by-id gif cache as
	// a side effect. requestID scopes the run's log lines.
	WarmRankings(requestID string) error
}

package rankings

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/gateway/db"
	"gif-api/internal/domain/model"
	"gif-api/internal/domain/usecase/gif"
	"gif-api/pkg/log"
	"gif-api/pkg/msg"
)

// snapshotKey is the single cache entry holding the latest warmup snapshot.
const snapshotKey = "latest"

// SnapshotCache stores ranking snapshots between warmup runs. Satisfied by
// *redis.Cache.
type SnapshotCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}

type rankingsUseCase struct {
	gifUseCase     gif.UseCase
	counterGateway db.CounterGateway
	snapshotCache  SnapshotCache
}

// NewRankingsUseCase creates the rankings use case. snapshotCache holds
// warmup snapshots and may be nil when warmup is disabled.
func NewRankingsUseCase(gifUseCase gif.UseCase, counterGateway db.CounterGateway, snapshotCache SnapshotCache) UseCase {
	return &rankingsUseCase{
		gifUseCase:     gifUseCase,
		counterGateway: counterGateway,
		snapshotCache:  snapshotCache,
	}
}

// GetRankings serves the latest warmup snapshot when one is present, so the
// read path stays off the counter table between warmup runs. Snapshot expiry
// is enforced by the cache TTL; any miss or read failure recomputes.
func (uc *rankingsUseCase) GetRankings() ([]entity.RankedGif, error) {
	if uc.snapshotCache != nil {
		var snapshot []entity.RankedGif
		if err := uc.snapshotCache.Get(context.Background(), snapshotKey, &snapshot); err == nil && len(snapshot) > 0 {
			log.Debugf(msg.GetMessage("rankings.snapshot-hit", len(snapshot)))
			return snapshot, nil
		}
	}

	return uc.ComputeRankings()
}

// ComputeRankings returns every counted gif ordered from most to least read.
func (uc *rankingsUseCase) ComputeRankings() ([]entity.RankedGif, error) {
	counters, err := uc.counterGateway.FindAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCounter, err)
	}

	// Stable sort: ties keep the scan order returned by the store.
	sort.SliceStable(counters, func(i, j int) bool {
		return counters[i].Counter > counters[j].Counter
	})

	ranked := make([]entity.RankedGif, 0, len(counters))
	for i, counter := range counters {
		entry := entity.RankedGif{
			GifID:     counter.GifID,
			Counter:   counter.Counter,
			Timestamp: counter.Timestamp,
			Rank:      i + 1,
		}

		// Counter-neutral metadata read; a failure leaves the entry in
		// place without a URL rather than failing the whole ranking.
		gifRecord, err := uc.gifUseCase.GetByID(counter.GifID, false)
		if err != nil {
			log.Warnf(msg.GetMessage("rankings.metadata-failed", counter.GifID, err))
		} else if gifRecord != nil {
			entry.URL = gifRecord.URL
		}

		ranked = append(ranked, entry)
	}

	return ranked, nil
}

// WarmRankings computes the rankings and stores the snapshot in the warmup
// cache.
func (uc *rankingsUseCase) WarmRankings(requestID string) error {
	log.Info(msg.GetMessage("rankings.warmup.start"), zap.String("request_id", requestID))

	ranked, err := uc.ComputeRankings()
	if err != nil {
		log.Error(msg.GetMessage("rankings.warmup.failed"),
			zap.String("request_id", requestID),
			zap.Error(err))
		return err
	}

	if uc.snapshotCache != nil {
		if err := uc.snapshotCache.Set(context.Background(), snapshotKey, ranked); err != nil {
			log.Warn(msg.GetMessage("rankings.warmup.snapshot-failed"),
				zap.String("request_id", requestID),
				zap.Error(err))
		}
	}

	log.Info(msg.GetMessage("rankings.warmup.end", len(ranked)),
		zap.String("request_id", requestID),
		zap.Int("ranked", len(ranked)))
	return nil
}

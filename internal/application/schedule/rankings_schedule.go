package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"gif-api/internal/domain/usecase/rankings"
	"gif-api/pkg/log"
	"gif-api/pkg/msg"
	"gif-api/pkg/redis"
)

// RankingsSchedulerConfig holds configuration for the rankings warmup scheduler
type RankingsSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RankingsScheduler periodically recomputes the gif rankings so the by-id
// cache stays warm for the most-read gifs. A redis lock keeps the job on a
// single instance.
type RankingsScheduler struct {
	cron        *cron.Cron
	useCase     rankings.UseCase
	redisClient *redis.Client
	config      *RankingsSchedulerConfig
}

// NewRankingsScheduler creates a new rankings scheduler with distributed locking support
func NewRankingsScheduler(useCase rankings.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *RankingsScheduler {
	return &RankingsScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &RankingsSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitRankingsScheduleTasks initializes the warmup task under a distributed lock
func (s *RankingsScheduler) InitRankingsScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewLock(
			s.redisClient,
			"gif_rankings_scheduler",
			redis.NewLockOptions().
				WithTTL(s.config.LockTTL).
				WithRefreshInterval(s.config.RefreshInterval).
				WithLockNamespace("gif_schedules"),
		)

		if err := lock.Lock(ctx); err != nil {
			log.Errorf(msg.GetMessage("rankings.schedule.lock-failed", err))
			return
		}

		refreshErrs := lock.AutoRefresh(ctx)
		go func() {
			if err := <-refreshErrs; err != nil && ctx.Err() == nil {
				log.Errorf(msg.GetMessage("rankings.schedule.lock-lost", err))
			}
		}()

		_, err := s.cron.AddFunc(s.config.CronExpression, s.runWarmup)
		if err != nil {
			log.Errorf(msg.GetMessage("rankings.schedule.cron-failed", err))
			return
		}

		s.cron.Start()
		log.Info(msg.GetMessage("rankings.schedule.started", s.config.CronExpression))

		<-ctx.Done()
		s.cron.Stop()
		_ = lock.Unlock(context.Background())
	}()
}

func (s *RankingsScheduler) runWarmup() {
	requestID := uuid.NewString()

	if err := s.useCase.WarmRankings(requestID); err != nil {
		log.Error(msg.GetMessage("rankings.schedule.run-failed"),
			zap.String("request_id", requestID),
			zap.Error(err))
	}
}

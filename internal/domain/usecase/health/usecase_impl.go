package health

import (
	"context"
	"time"

	"gif-api/internal/domain/gateway/db"
	"gif-api/internal/domain/model"
	"gif-api/pkg/redis"
)

type healthUseCase struct {
	storeGateway db.StoreHealthGateway
	redisClient  *redis.Client
}

func NewHealthUseCase(storeGateway db.StoreHealthGateway, redisClient *redis.Client) UseCase {
	return &healthUseCase{
		storeGateway: storeGateway,
		redisClient:  redisClient,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	storeHealth := useCase.storeGateway.Health()
	cacheHealth := useCase.checkRedis()

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp || cacheHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Store:  storeHealth,
		Cache:  cacheHealth,
	}
}

func (useCase *healthUseCase) checkRedis() model.ComponentHealthStatus {
	if useCase.redisClient == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"info": "redis not configured"},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := useCase.redisClient.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error()},
		}
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"ping": "ok"},
	}
}

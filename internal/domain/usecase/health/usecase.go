package health

import "gif-api/internal/domain/model"

type UseCase interface {
	// CheckHealth returns the health of the store and the redis cache
	CheckHealth() model.HealthResponse
}

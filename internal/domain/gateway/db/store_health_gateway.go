package db

import (
	"strconv"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/model"
)

// StoreHealthGateway reports the health of the HarperDB connection.
type StoreHealthGateway interface {
	Health() model.ComponentHealthStatus
}

type harperHealthGateway struct {
	store        Executor
	counterTable string
}

// NewHarperHealthGateway creates a health gateway probing the counter table.
func NewHarperHealthGateway(store Executor, counterTable string) StoreHealthGateway {
	return &harperHealthGateway{store: store, counterTable: counterTable}
}

func (g *harperHealthGateway) Health() model.ComponentHealthStatus {
	var rows []entity.GifCounter
	if err := g.store.ScanAll(g.counterTable, &rows); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error()},
		}
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"counter_rows": strconv.Itoa(len(rows))},
	}
}

package performance

import (
	"context"

	"shopping-samples/internal/entities"
)

type PerformanceRepository interface {
	SaveProductPerformance(ctx context.Context, runID string, rows []entities.ProductPerformance) error
	FindByRunID(ctx context.Context, runID string) ([]entities.ProductPerformance, error)
}

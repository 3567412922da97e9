package repository

import (
	"context"

	"AgriChain/internal/domain/models"
)

// PriceStore serves the commodity price reference table. Implementations
// load once and are safe for concurrent readers afterwards.
type PriceStore interface {
	// FilterByCommodity returns every row whose commodity matches one of
	// the given keywords (case-insensitive substring match).
	FilterByCommodity(ctx context.Context, keywords []string) ([]models.PriceRecord, error)
	Rows(ctx context.Context) (int, error) // loaded row count, for health/info
	Close() error
}

// Publisher emits generated advisories to downstream consumers.
type Publisher interface {
	PublishAdvisory(ctx context.Context, a *models.Advisory) error
	Close() error
}

// Metrics records operational measurements for the pipeline.
type Metrics interface {
	RecordAdvisory(crop, state string)
	RecordError(kind string)
	RecordStageLatency(stage string, seconds float64)
	RecordConfidence(crop string, score float64)
}

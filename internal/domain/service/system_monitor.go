package service

import (
	"context"

	"dcars/internal/domain/entity"
)

// SystemMonitor reports host resource usage.
type SystemMonitor interface {
	Snapshot(ctx context.Context) (*entity.SystemStats, error)
}

package ports

import (
	"context"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// ActivityRecorder accepts audit events. Implementations must not block the caller.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityRepository persists and reads back audit events.
type ActivityRepository interface {
	Insert(ctx context.Context, event domain.ActivityEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}

type ActivityService interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}

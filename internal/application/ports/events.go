package ports

import (
	"context"

	"civic-issues-api/internal/infrastructure/mq"
)

type EventPublisher interface {
	Publish(ctx context.Context, e mq.Event) error
}

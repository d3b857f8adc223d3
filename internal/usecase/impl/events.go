package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "workforce/internal/delivery/context"
	"workforce/internal/domain/service"
)

// publishEvent pushes a lifecycle event to the notifier boundary.
// Publication is best-effort: a failed publish is logged and never fails the
// mutation that triggered it.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LifecycleEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := publisher.PublishLifecycleEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish lifecycle event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

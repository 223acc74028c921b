package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/observability"
)

// ActivityService subscribes to service events for audit logging and
// counters.
type ActivityService struct {
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewActivityService constructs the service.
func NewActivityService(logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{logger: logger, metrics: metrics}
}

// RegisterHandlers attaches the audit subscriber to every event type.
func (s *ActivityService) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventSnapshotRefreshed,
		events.EventExportGenerated,
		events.EventPresetSaved,
		events.EventPresetDeleted,
	} {
		dispatcher.Subscribe(eventType, s.handle)
	}
}

func (s *ActivityService) handle(_ context.Context, event events.Event) error {
	s.metrics.RecordEvent(string(event.Type))
	s.logger.Info("activity",
		zap.String("event", string(event.Type)),
		zap.String("actor", event.ActorEmp),
		zap.Any("payload", event.Payload),
	)
	return nil
}

package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/service"
)

// StartRefreshWorker schedules periodic snapshot refreshes from the
// upstream API. The returned cron must be stopped on shutdown.
func StartRefreshWorker(spec string, view *service.ViewService, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		count, err := view.RefreshSnapshot(ctx)
		if err != nil {
			logger.Warn("snapshot refresh failed", zap.Error(err))
			return
		}
		logger.Info("snapshot refreshed", zap.Int("tickets", count))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

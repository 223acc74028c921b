package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/derive"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// ChartsHandler serves time-bucketed chart series.
type ChartsHandler struct {
	view *service.ViewService
}

// NewChartsHandler constructs handler.
func NewChartsHandler(view *service.ViewService) *ChartsHandler {
	return &ChartsHandler{view: view}
}

// TicketSeries GET /api/charts/tickets?period=daily|weekly|monthly.
func (h *ChartsHandler) TicketSeries(c *fiber.Ctx) error {
	period := derive.Period(c.Query("period", string(derive.PeriodDaily)))
	switch period {
	case derive.PeriodDaily, derive.PeriodWeekly, derive.PeriodMonthly:
	default:
		return apperrors.NewValidationError("period must be daily, weekly or monthly", nil)
	}

	series, err := h.view.ChartSeries(c.UserContext(), period)
	if err != nil {
		return apperrors.NewUpstreamError(err)
	}
	return c.JSON(fiber.Map{"data": series})
}

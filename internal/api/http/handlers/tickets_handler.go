package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/dto"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/derive"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// TicketsHandler serves the derived ticket list views.
type TicketsHandler struct {
	view  *service.ViewService
	marks *service.ReadMarkService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(view *service.ViewService, marks *service.ReadMarkService) *TicketsHandler {
	return &TicketsHandler{view: view, marks: marks}
}

// List GET /api/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	query := parseListQuery(c)
	page, err := h.view.ListTickets(c.UserContext(), principal.EmpNo, query)
	if err != nil {
		return apperrors.NewUpstreamError(err)
	}

	items := make([]dto.TicketRow, 0, len(page.Items))
	for i := range page.Items {
		t := &page.Items[i]
		items = append(items, dto.TicketRowFrom(t, page.Unread[t.ID]))
	}
	return c.JSON(fiber.Map{"data": dto.TicketListResponse{
		Items:      items,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Page:       page.Page,
	}})
}

// Stats GET /api/tickets/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	counts, err := h.view.StatusCounts(c.UserContext())
	if err != nil {
		return apperrors.NewUpstreamError(err)
	}
	resp := dto.StatusCountsResponse{
		Waiting: counts[derive.StatusWaiting],
		Doing:   counts[derive.StatusDoing],
		Done:    counts[derive.StatusDone],
		Review:  counts[derive.StatusReview],
	}
	resp.Total = resp.Waiting + resp.Doing + resp.Done + resp.Review
	return c.JSON(fiber.Map{"data": resp})
}

// MarkRead POST /api/tickets/:id/read.
func (h *TicketsHandler) MarkRead(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || ticketID <= 0 {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	if err := h.marks.MarkRead(c.UserContext(), principal.EmpNo, ticketID); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"ticket_id": ticketID}})
}

func parseListQuery(c *fiber.Ctx) service.ListQuery {
	query := service.ListQuery{
		Filter: derive.ListFilter{
			Search:     c.Query("search"),
			Status:     c.Query("status"),
			CategoryID: c.Query("category_id"),
			ProjectID:  c.Query("project_id"),
		},
		Sort: derive.SortSpec{
			Column:    c.Query("sort"),
			Direction: derive.SortDirection(strings.ToLower(c.Query("dir"))),
		},
		Page:     parseInt(c.Query("page"), 1),
		PageSize: parseInt(c.Query("page_size"), 20),
	}
	if query.Sort.Direction != derive.SortDesc {
		query.Sort.Direction = derive.SortAsc
	}
	if from := parseTime(c.Query("created_from")); from != nil {
		query.Filter.CreatedFrom = from
	}
	if to := parseTime(c.Query("created_to")); to != nil {
		query.Filter.CreatedTo = to
	}
	return query
}

func parseTime(val string) *time.Time {
	if val == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil
	}
	return &t
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// LookupsHandler proxies normalized category and project collections so the
// dashboard client never sees the upstream's drifting response shapes.
type LookupsHandler struct {
	view *service.ViewService
}

// NewLookupsHandler constructs handler.
func NewLookupsHandler(view *service.ViewService) *LookupsHandler {
	return &LookupsHandler{view: view}
}

// Categories GET /api/categories.
func (h *LookupsHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.view.Categories(c.UserContext())
	if err != nil {
		return apperrors.NewUpstreamError(err)
	}
	return c.JSON(fiber.Map{"data": categories})
}

// Projects GET /api/projects.
func (h *LookupsHandler) Projects(c *fiber.Ctx) error {
	projects, err := h.view.Projects(c.UserContext())
	if err != nil {
		return apperrors.NewUpstreamError(err)
	}
	return c.JSON(fiber.Map{"data": projects})
}

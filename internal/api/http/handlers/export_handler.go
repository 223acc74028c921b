package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/dto"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// ExportHandler serves the CSV data-extraction feature.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Columns GET /api/export/columns.
func (h *ExportHandler) Columns(c *fiber.Ctx) error {
	columns := h.exports.Catalog().Columns()
	infos := make([]dto.ColumnInfo, 0, len(columns))
	for _, col := range columns {
		infos = append(infos, dto.ColumnInfo{Key: col.Key, Label: col.Label})
	}
	return c.JSON(fiber.Map{"data": infos})
}

// Extract POST /api/export/tickets.
func (h *ExportHandler) Extract(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	data, _, err := h.exports.ExtractCSV(c.UserContext(), principal.EmpNo, service.ExtractRequest{
		Columns:                req.Columns,
		Rules:                  req.Rules,
		CreatedYearInclude:     req.CreatedYearInclude,
		CreatedDayRangePercent: req.CreatedDayRangePercent,
		PresetName:             req.PresetName,
	})
	if err != nil {
		return apperrors.NewUpstreamError(err)
	}

	filename := fmt.Sprintf("tickets_%s.csv", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/dto"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// PresetsHandler manages per-user data-extract presets.
type PresetsHandler struct {
	presets *service.PresetService
}

// NewPresetsHandler constructs handler.
func NewPresetsHandler(presets *service.PresetService) *PresetsHandler {
	return &PresetsHandler{presets: presets}
}

// List GET /api/presets.
func (h *PresetsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	presets, err := h.presets.List(c.UserContext(), principal.EmpNo)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": presets})
}

// Save POST /api/presets.
func (h *PresetsHandler) Save(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.PresetSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.presets.Save(c.UserContext(), principal.EmpNo, req.DataExtractPreset); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": req.DataExtractPreset})
}

// Delete DELETE /api/presets/:name.
func (h *PresetsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	name := c.Params("name")
	if name == "" {
		return apperrors.NewValidationError("preset name required", nil)
	}
	if err := h.presets.Delete(c.UserContext(), principal.EmpNo, name); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"name": name}})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/usecase"
	"github.com/jhoicas/salespulse-api/internal/domain"
)

// GoalHandler maneja las peticiones HTTP de metas.
type GoalHandler struct {
	uc *usecase.TrackerUseCase
}

// NewGoalHandler construye el handler.
func NewGoalHandler(uc *usecase.TrackerUseCase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

// List GET /api/goals
// Cada meta incluye su porcentaje de avance (0-100) ya calculado.
func (h *GoalHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListGoals())
}

// Create POST /api/goals
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	goal, err := h.uc.AddGoal(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, deadline (2006-01-02) y type (revenue|sales_count) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

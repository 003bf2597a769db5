package handlers

import (
	"ayurrag/internal/dto"
	"ayurrag/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PlanHandler struct {
	planService *service.PlanService
	logger      *zap.Logger
}

func NewPlanHandler(planService *service.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		logger:      logger,
	}
}

// GeneratePlan godoc
// @Summary Generate a treatment plan
// @Description Generate a structured Ayurvedic treatment plan for a condition
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GeneratePlanRequest true "Plan request"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/plans [post]
func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.GeneratePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Condition == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Condition is required",
		})
	}

	resp, err := h.planService.GeneratePlan(c.Context(), userID, req.Condition)
	if err != nil {
		h.logger.Error("Plan generation failed",
			zap.String("condition", req.Condition),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Plan generation failed",
		})
	}

	return c.JSON(resp)
}

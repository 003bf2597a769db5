package handlers

import (
	"ayurrag/internal/dto"
	"ayurrag/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProgressHandler struct {
	progressService *service.ProgressService
	logger          *zap.Logger
}

func NewProgressHandler(progressService *service.ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		logger:          logger,
	}
}

// LogProgress godoc
// @Summary Log weekly progress
// @Description Record a weekly check-in and get a fresh progress report
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogProgressRequest true "Progress log"
// @Success 201 {object} dto.ProgressResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/progress [post]
func (h *ProgressHandler) LogProgress(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.LogProgressRequest
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
	if req.Week < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Week must be a positive number",
		})
	}

	resp, err := h.progressService.LogProgress(c.Context(), userID, req)
	if err != nil {
		h.logger.Error("Progress logging failed",
			zap.String("condition", req.Condition),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Progress logging failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProgress godoc
// @Summary Get progress history
// @Description List all logged weeks for a condition with a trend report
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param condition query string true "Condition name"
// @Success 200 {object} dto.ProgressHistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return unauthorized(c)
	}

	condition := c.Query("condition")
	if condition == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Condition query parameter is required",
		})
	}

	resp, err := h.progressService.GetProgress(c.Context(), userID, condition)
	if err != nil {
		h.logger.Error("Progress lookup failed",
			zap.String("condition", condition),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Progress lookup failed",
		})
	}

	return c.JSON(resp)
}

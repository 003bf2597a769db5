package handlers

import (
	"ayurrag/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
	logger           *zap.Logger
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// Seed godoc
// @Summary Seed the knowledge base
// @Description Load the Ayurvedic corpus into the vector store. Already seeded collections are skipped unless force=true.
// @Tags knowledge
// @Produce json
// @Security BearerAuth
// @Param force query bool false "Reseed collections that already hold data"
// @Success 200 {object} dto.SeedResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/knowledge/seed [post]
func (h *KnowledgeHandler) Seed(c *fiber.Ctx) error {
	force := c.QueryBool("force", false)

	resp, err := h.knowledgeService.Seed(c.Context(), force)
	if err != nil {
		h.logger.Error("Knowledge base seeding failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Seeding failed",
		})
	}

	return c.JSON(resp)
}

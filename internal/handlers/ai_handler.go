package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"resume-builder-backend/internal/models"
	"resume-builder-backend/internal/services"
)

const fallbackNote = "AI service temporarily unavailable - using fallback enhancement"

const fallbackJobDescription = `• Developed and maintained applications using modern technologies
• Collaborated with cross-functional teams to design and deliver new features
• Implemented coding best practices and conducted thorough code reviews
• Optimized application performance and improved user experience`

type AIHandler struct {
	enhancer services.EnhancerService
	validate *validator.Validate
}

func NewAIHandler(enhancer services.EnhancerService) *AIHandler {
	return &AIHandler{
		enhancer: enhancer,
		validate: validator.New(),
	}
}

// HandleEnhanceSummary handles POST /api/ai/enhance-pro-sum. An upstream
// failure degrades to a static fallback, never an error response.
func (h *AIHandler) HandleEnhanceSummary(c *fiber.Ctx) error {
	req, ok := h.parseRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Professional summary content is required",
		})
	}

	enhanced, err := h.enhancer.EnhanceSummary(c.Context(), req.UserContent)
	if err != nil {
		log.Printf("⚠️ Summary enhancement failed, using fallback: %v", err)
		return c.JSON(models.EnhanceResponse{
			Success:         true,
			EnhancedContent: fallbackSummary(req.UserContent),
			Note:            fallbackNote,
		})
	}

	return c.JSON(models.EnhanceResponse{
		Success:         true,
		EnhancedContent: enhanced,
	})
}

// HandleEnhanceJobDescription handles POST /api/ai/enhance-job-desc.
func (h *AIHandler) HandleEnhanceJobDescription(c *fiber.Ctx) error {
	req, ok := h.parseRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Job description content is required",
		})
	}

	enhanced, err := h.enhancer.EnhanceJobDescription(c.Context(), req.UserContent)
	if err != nil {
		log.Printf("⚠️ Job description enhancement failed, using fallback: %v", err)
		return c.JSON(models.EnhanceResponse{
			Success:         true,
			EnhancedContent: fallbackJobDescription,
			Note:            fallbackNote,
		})
	}

	return c.JSON(models.EnhanceResponse{
		Success:         true,
		EnhancedContent: enhanced,
	})
}

func (h *AIHandler) parseRequest(c *fiber.Ctx) (models.EnhanceRequest, bool) {
	var req models.EnhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return req, false
	}
	req.UserContent = strings.TrimSpace(req.UserContent)
	if err := h.validate.Struct(req); err != nil {
		return req, false
	}
	return req, true
}

func fallbackSummary(userContent string) string {
	if userContent == "" {
		return "Experienced professional with strong technical skills and proven track record. Seeking opportunities to leverage expertise in dynamic environments."
	}
	return fmt.Sprintf("Experienced %s with strong technical skills and proven track record. Seeking opportunities to leverage expertise in dynamic environments.", userContent)
}

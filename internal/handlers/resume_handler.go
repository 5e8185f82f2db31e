package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder-backend/internal/middleware"
	"resume-builder-backend/internal/models"
	"resume-builder-backend/internal/repositories"
	"resume-builder-backend/internal/services"
)

type ResumeHandler struct {
	resumeService services.ResumeService
}

func NewResumeHandler(resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// HandleCreate handles POST /api/resumes/create
func (h *ResumeHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request payload",
		})
	}

	resume, err := h.resumeService.Create(c.Context(), middleware.UserID(c), req.Title, req.ResumeID)
	if err != nil {
		return resumeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.ResumeResponse{
		Success: true,
		Message: "Resume created successfully",
		Resume:  resume,
	})
}

// HandleUpdate handles POST /api/resumes/update. This is the upsert path:
// the resume is created if the reference does not match an existing record.
func (h *ResumeHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request payload",
		})
	}
	if req.ResumeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "resumeId is required",
		})
	}

	resume, message, err := h.resumeService.Save(c.Context(), middleware.UserID(c), req.ResumeID, req.ResumeData)
	if err != nil {
		return resumeError(c, err)
	}

	return c.JSON(models.ResumeResponse{
		Success: true,
		Message: message,
		Resume:  resume,
	})
}

// HandleGet handles GET /api/resumes/get/:resumeId
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	resume, err := h.resumeService.Get(c.Context(), middleware.UserID(c), c.Params("resumeId"))
	if err != nil {
		return resumeError(c, err)
	}
	return c.JSON(models.ResumeResponse{Success: true, Resume: resume})
}

// HandleGetPublic handles GET /api/resumes/public/:resumeId. No auth: only
// records marked public are visible here.
func (h *ResumeHandler) HandleGetPublic(c *fiber.Ctx) error {
	resume, err := h.resumeService.GetPublic(c.Context(), c.Params("resumeId"))
	if err != nil {
		return resumeError(c, err)
	}
	return c.JSON(models.ResumeResponse{Success: true, Resume: resume})
}

// HandleDelete handles POST/DELETE /api/resumes/delete/:resumeId
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.resumeService.Delete(c.Context(), middleware.UserID(c), c.Params("resumeId")); err != nil {
		return resumeError(c, err)
	}
	return c.JSON(models.ResumeResponse{
		Success: true,
		Message: "Resume deleted successfully",
	})
}

// HandleList handles GET /api/resumes/user-resumes
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.resumeService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return resumeError(c, err)
	}
	return c.JSON(models.ResumeListResponse{Success: true, Resumes: resumes})
}

// resumeError maps service and repository errors onto the wire taxonomy.
// Uniqueness conflicts never reach this point; the reconciler absorbs them.
func resumeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidReference), errors.Is(err, services.ErrInvalidPayload):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Resume not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}

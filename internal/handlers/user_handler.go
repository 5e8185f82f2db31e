package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"resume-builder-backend/internal/middleware"
	"resume-builder-backend/internal/models"
	"resume-builder-backend/internal/repositories"
	"resume-builder-backend/internal/services"
)

type UserHandler struct {
	authService   services.AuthService
	resumeService services.ResumeService
	userRepo      repositories.UserRepository
	validate      *validator.Validate
}

func NewUserHandler(
	authService services.AuthService,
	resumeService services.ResumeService,
	userRepo repositories.UserRepository,
) *UserHandler {
	return &UserHandler{
		authService:   authService,
		resumeService: resumeService,
		userRepo:      userRepo,
		validate:      validator.New(),
	}
}

// HandleRegister handles POST /api/users/register
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	user, token, err := h.authService.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    user,
	})
}

// HandleLogin handles POST /api/users/login
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	user, token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(models.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// HandleGetMe handles GET /api/users/data
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	user, err := h.userRepo.FindByID(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleGetResumes handles GET /api/users/ (legacy alias of
// /api/resumes/user-resumes kept for old clients).
func (h *UserHandler) HandleGetResumes(c *fiber.Ctx) error {
	resumes, err := h.resumeService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"resumes": resumes})
}

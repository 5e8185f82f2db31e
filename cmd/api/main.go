package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resume-builder-backend/internal/config"
	"resume-builder-backend/internal/handlers"
	"resume-builder-backend/internal/middleware"
	"resume-builder-backend/internal/repositories"
	"resume-builder-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	userRepo := repositories.NewUserRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpirationHours)
	authService := services.NewAuthService(userRepo, tokenService)
	resumeService := services.NewResumeService(resumeRepo)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	enhancerService := services.NewEnhancerService(geminiService)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	userHandler := handlers.NewUserHandler(authService, resumeService, userRepo)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	aiHandler := handlers.NewAIHandler(enhancerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Builder API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	protect := middleware.Protect(tokenService, userRepo)

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "OK",
			"time":   time.Now(),
		})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is live...")
	})

	users := app.Group("/api/users")
	users.Post("/register", userHandler.HandleRegister)
	users.Post("/login", userHandler.HandleLogin)
	users.Get("/data", protect, userHandler.HandleGetMe)
	users.Get("/", protect, userHandler.HandleGetResumes)

	resumes := app.Group("/api/resumes")
	resumes.Get("/user-resumes", protect, resumeHandler.HandleList)
	resumes.Post("/create", protect, resumeHandler.HandleCreate)
	resumes.Post("/update", protect, resumeHandler.HandleUpdate)
	resumes.Post("/delete/:resumeId", protect, resumeHandler.HandleDelete)
	resumes.Delete("/delete/:resumeId", protect, resumeHandler.HandleDelete)
	resumes.Get("/get/:resumeId", protect, resumeHandler.HandleGet)
	resumes.Get("/public/:resumeId", resumeHandler.HandleGetPublic)

	ai := app.Group("/api/ai", protect)
	ai.Post("/enhance-pro-sum", aiHandler.HandleEnhanceSummary)
	ai.Post("/enhance-job-desc", aiHandler.HandleEnhanceJobDescription)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/middleware"
	"resume-builder-backend/internal/repositories"
	"resume-builder-backend/internal/services"
)

type testEnv struct {
	app    *fiber.App
	token  string
	userID primitive.ObjectID
	auth   services.AuthService
}

// setupTestEnv wires the app the way cmd/api does, on in-memory
// repositories, and registers one authenticated user.
func setupTestEnv(t *testing.T, enhancer services.EnhancerService) *testEnv {
	t.Helper()

	userRepo := repositories.NewMemoryUserRepository()
	resumeRepo := repositories.NewMemoryResumeRepository()
	tokens := services.NewTokenService("test-secret-key-for-jwt-signing", 24)
	authService := services.NewAuthService(userRepo, tokens)
	resumeService := services.NewResumeService(resumeRepo)

	userHandler := NewUserHandler(authService, resumeService, userRepo)
	resumeHandler := NewResumeHandler(resumeService)

	app := fiber.New()
	protect := middleware.Protect(tokens, userRepo)

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

	if enhancer != nil {
		aiHandler := NewAIHandler(enhancer)
		ai := app.Group("/api/ai", protect)
		ai.Post("/enhance-pro-sum", aiHandler.HandleEnhanceSummary)
		ai.Post("/enhance-job-desc", aiHandler.HandleEnhanceJobDescription)
	}

	user, token, err := authService.Register(context.Background(), "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	return &testEnv{app: app, token: token, userID: user.ID, auth: authService}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

package services

import (
	"context"
	"strings"
)

// EnhancerService proxies resume text to the generative model. Failures are
// returned as errors; the handlers map them to static fallback content
// rather than surfacing them to the user.
type EnhancerService interface {
	EnhanceSummary(ctx context.Context, content string) (string, error)
	EnhanceJobDescription(ctx context.Context, content string) (string, error)
}

type enhancerService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewEnhancerService(gemini GeminiService) EnhancerService {
	return &enhancerService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// EnhanceSummary implements EnhancerService.
func (e *enhancerService) EnhanceSummary(ctx context.Context, content string) (string, error) {
	text, err := e.gemini.GenerateText(ctx, e.prompts.BuildSummaryPrompt(content), 0.7)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// EnhanceJobDescription implements EnhancerService.
func (e *enhancerService) EnhanceJobDescription(ctx context.Context, content string) (string, error) {
	text, err := e.gemini.GenerateText(ctx, e.prompts.BuildJobDescriptionPrompt(content), 0.7)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

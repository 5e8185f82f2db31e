package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSummaryPrompt creates the prompt for professional summary enhancement
func (pb *PromptBuilder) BuildSummaryPrompt(userContent string) string {
	return fmt.Sprintf(`You are an expert resume writer. Enhance this professional summary to make it more compelling, professional, and ATS-friendly. Keep it concise (2-3 sentences) and highlight key skills and achievements.

Original Summary: "%s"

Return only the enhanced summary text, with no preamble and no markdown formatting.`, userContent)
}

// BuildJobDescriptionPrompt creates the prompt for experience description enhancement
func (pb *PromptBuilder) BuildJobDescriptionPrompt(userContent string) string {
	return fmt.Sprintf(`You are an expert resume writer. Rewrite this job description as 3-5 concise bullet points that are achievement-oriented and ATS-friendly. Start each bullet with a strong action verb.

Original Description: "%s"

Return only the bullet points, one per line, each starting with "• ".`, userContent)
}

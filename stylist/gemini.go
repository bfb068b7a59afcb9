package stylist

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/outfitly/outfit-planner/config"
	"google.golang.org/api/option"
)

// TextGenerator produces one free-text completion per prompt. The service
// depends on this interface so tests can count and stub calls.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini text-generation endpoint.
type GeminiGenerator struct {
	Model string
}

func NewGeminiGenerator() *GeminiGenerator {
	return &GeminiGenerator{Model: config.GeminiModel}
}

// GenerateText sends the prompt and returns the first candidate's text.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if config.GeminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("unexpected response format (no text part)")
}

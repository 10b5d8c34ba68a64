package textgen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiGenerator produces proposal text through Google's Gemini API.
//
// Supported env vars:
//   - GEMINI_API_KEY (required)
//   - GEMINI_MODEL (default: gemini-2.0-flash)
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context) (*GeminiGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Printf("[textgen][gemini] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[textgen][gemini] failed creating client err=%v", err)
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	log.Printf("[textgen][gemini] client initialized model=%s", model)

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrMissingGeminiAPIKey
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.7)),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		log.Printf("[textgen][gemini] generation failed err=%v", err)
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	log.Printf("[textgen][gemini] generation success chars=%d", len(text))
	return text, nil
}

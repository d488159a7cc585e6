package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when the settings name no model
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates prompts with a Gemini model
type GeminiTranslator struct {
	apiKey  string
	model   string
	baseURL string
}

// NewGeminiTranslator creates a new Gemini backed translator
func NewGeminiTranslator(apiKey, model string) *GeminiTranslator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiTranslator{apiKey: apiKey, model: model}
}

// Name returns the backend name
func (t *GeminiTranslator) Name() string {
	return "gemini"
}

// Translate translates a Japanese prompt to English. A client is created
// for every call.
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      t.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: t.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	temperature := float32(0.2)
	resp, err := client.Models.GenerateContent(ctx, t.model, []*genai.Content{
		{
			Parts: []*genai.Part{{Text: fmt.Sprintf(llmInstruction, text)}},
		},
	}, &genai.GenerateContentConfig{Temperature: &temperature})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(extractText(resp))
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translated, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}

package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// llmInstruction asks a chat model to translate a prompt without touching its
// structure, since the result is split on commas afterwards
const llmInstruction = `Translate the following Japanese image-generation prompt to English.
Keep every comma, parenthesis and colon-separated weight exactly where it is and translate only the words.
Respond with only the translated prompt, nothing else.

%s`

// OpenAITranslator translates prompts with an OpenAI chat model
type OpenAITranslator struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAITranslator creates a new OpenAI backed translator
func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	return NewOpenAITranslatorWithBaseURL(apiKey, model, "")
}

// NewOpenAITranslatorWithBaseURL creates a translator talking to an
// OpenAI-compatible endpoint. An empty baseURL keeps the default.
func NewOpenAITranslatorWithBaseURL(apiKey, model, baseURL string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAITranslator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

// Name returns the backend name
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// Translate translates a Japanese prompt to English
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(llmInstruction, text),
			},
		},
		Temperature: 0.2,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translated, nil
}

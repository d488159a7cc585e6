package translation

import (
	"context"

	"go.uber.org/zap"

	"codeberg.org/snonux/sdprompt/internal/settings"
)

// Source and target languages of every backend
const (
	SourceLanguage = "ja"
	TargetLanguage = "en"
)

// Translator translates a single text from Japanese to English
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
	Name() string
}

// New selects the backend named by s.Provider. Credentials are passed as
// they are; missing ones surface as per-request errors.
func New(s settings.Settings, logger *zap.Logger) Translator {
	if logger == nil {
		logger = zap.NewNop()
	}

	var t Translator
	switch s.Provider {
	case settings.ProviderOpenAI:
		t = NewOpenAITranslator(s.OpenAIKey, s.OpenAIModel)
	case settings.ProviderGemini:
		t = NewGeminiTranslator(s.GeminiKey, s.GeminiModel)
	case settings.ProviderAzure, "":
		t = NewAzureTranslator(s.Endpoint, s.Key, s.Region)
	default:
		logger.Warn("Unknown translation provider, using azure", zap.String("provider", s.Provider))
		t = NewAzureTranslator(s.Endpoint, s.Key, s.Region)
	}

	logger.Debug("Translation backend selected", zap.String("backend", t.Name()))
	return t
}

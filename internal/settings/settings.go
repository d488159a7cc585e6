// Package settings loads translation-service credentials from the JSON
// settings file. Failures never stop the program: they are logged and the
// affected credentials stay unset, so later translation calls fail softly.
//
// File format:
//
//	{
//	  "TRANSLATOR_ENDPOINT": "https://api.cognitive.microsofttranslator.com",
//	  "TRANSLATOR_KEY": "...",
//	  "TRANSLATOR_REGION": "japaneast"
//	}
//
// Every key can be overridden by an environment variable with the SDPROMPT_
// prefix, e.g. SDPROMPT_TRANSLATOR_KEY.
package settings

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Settings file keys
const (
	KeyEndpoint    = "TRANSLATOR_ENDPOINT"
	KeyKey         = "TRANSLATOR_KEY"
	KeyRegion      = "TRANSLATOR_REGION"
	KeyProvider    = "TRANSLATOR_PROVIDER"
	KeyOpenAIKey   = "OPENAI_API_KEY"
	KeyOpenAIModel = "OPENAI_MODEL"
	KeyGeminiKey   = "GEMINI_API_KEY"
	KeyGeminiModel = "GEMINI_MODEL"
)

// Translation providers
const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DefaultFile is the settings file looked up in the working directory
const DefaultFile = "setting.json"

// EnvPrefix prefixes environment overrides
const EnvPrefix = "SDPROMPT"

// Settings holds translation credentials. It is loaded once and not changed
// afterwards.
type Settings struct {
	Provider string

	Endpoint string
	Key      string
	Region   string

	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

// RequiredKeys returns the settings keys a provider cannot work without
func RequiredKeys(provider string) []string {
	switch provider {
	case ProviderOpenAI:
		return []string{KeyOpenAIKey}
	case ProviderGemini:
		return []string{KeyGeminiKey}
	default:
		return []string{KeyEndpoint, KeyKey, KeyRegion}
	}
}

// Load reads the settings file at path. A non-empty provider overrides the
// one named in the file. Problems are logged and leave credentials unset.
func Load(path, provider string, logger *zap.Logger) Settings {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	readErr := v.ReadInConfig()
	if readErr != nil {
		logReadError(logger, path, readErr)
	}

	if provider == "" {
		provider = v.GetString(KeyProvider)
	}
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = ProviderAzure
	}

	s := Settings{Provider: provider}

	for _, key := range RequiredKeys(provider) {
		if !v.IsSet(key) {
			if readErr == nil {
				logger.Warn("Missing key in settings file",
					zap.String("path", path),
					zap.String("key", key),
				)
			}
			return s
		}
	}

	s.Endpoint = v.GetString(KeyEndpoint)
	s.Key = v.GetString(KeyKey)
	s.Region = v.GetString(KeyRegion)
	s.OpenAIKey = v.GetString(KeyOpenAIKey)
	s.OpenAIModel = v.GetString(KeyOpenAIModel)
	s.GeminiKey = v.GetString(KeyGeminiKey)
	s.GeminiModel = v.GetString(KeyGeminiModel)

	logger.Debug("Settings loaded",
		zap.String("path", path),
		zap.String("provider", s.Provider),
	)
	return s
}

func logReadError(logger *zap.Logger, path string, err error) {
	var parseErr viper.ConfigParseError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Settings file not found, please create one", zap.String("path", path))
	case errors.As(err, &parseErr):
		logger.Warn("Error decoding the settings file, please check the JSON format",
			zap.String("path", path),
			zap.Error(err),
		)
	default:
		logger.Warn("Failed to read settings file", zap.String("path", path), zap.Error(err))
	}
}

package translation

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"codeberg.org/snonux/sdprompt/internal/prompt"
)

// Client runs one translation per prompt and never fails: on any backend
// error it logs the cause and returns the source prompt's segments.
type Client struct {
	translator Translator
	logger     *zap.Logger
}

// NewClient wraps a translator
func NewClient(translator Translator, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{translator: translator, logger: logger}
}

// Backend returns the wrapped translator's name
func (c *Client) Backend() string {
	return c.translator.Name()
}

// Translate translates a comma-joined source prompt and splits the result
// into keyword segments. Translators are expected to keep the commas.
func (c *Client) Translate(ctx context.Context, source string) []string {
	translated, err := c.translator.Translate(ctx, source)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			c.logger.Warn("Error translating prompt",
				zap.String("backend", c.translator.Name()),
				zap.Int("status_code", statusErr.StatusCode),
			)
		} else {
			c.logger.Warn("Error translating prompt",
				zap.String("backend", c.translator.Name()),
				zap.Error(err),
			)
		}
		return prompt.Segments(source)
	}

	return prompt.Segments(translated)
}

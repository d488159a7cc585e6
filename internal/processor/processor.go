package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/sdprompt/internal/cli"
	"codeberg.org/snonux/sdprompt/internal/gui"
	"codeberg.org/snonux/sdprompt/internal/keywordfile"
	"codeberg.org/snonux/sdprompt/internal/prompt"
	"codeberg.org/snonux/sdprompt/internal/session"
)

// ErrNoKeywords is returned by the headless mode when there is nothing to translate
var ErrNoKeywords = errors.New("no keywords given")

// PromptTranslator translates a comma-joined prompt into keyword segments.
// Implementations never fail; see translation.Client.
type PromptTranslator interface {
	Translate(ctx context.Context, source string) []string
}

// Processor handles the prompt generation pipeline
type Processor struct {
	flags      *cli.Flags
	translator PromptTranslator
	store      *session.Store
	logger     *zap.Logger
	backend    string
}

// NewProcessor creates a new prompt processor
func NewProcessor(flags *cli.Flags, translator PromptTranslator, store *session.Store, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Processor{
		flags:      flags,
		translator: translator,
		store:      store,
		logger:     logger,
	}
	if named, ok := translator.(interface{ Backend() string }); ok {
		p.backend = named.Backend()
	}
	return p
}

// Generate builds the final prompt from the fixed text and the keyword text.
// Both texts are trimmed and split into lines; every line becomes one term.
func (p *Processor) Generate(ctx context.Context, fixedText, keywords string) string {
	lines := append(prompt.Lines(fixedText), prompt.Lines(keywords)...)
	return p.run(ctx, lines)
}

func (p *Processor) run(ctx context.Context, lines []string) string {
	source := prompt.FormatSource(lines)
	p.logger.Debug("Translating prompt", zap.String("source", source))

	segments := p.translator.Translate(ctx, source)
	output := prompt.FormatTarget(segments)

	p.logger.Info("Prompt generated", zap.Int("terms", len(segments)))
	return output
}

// CollectKeywords merges keywords given as arguments with the keywords file
// named in the flags, arguments first
func (p *Processor) CollectKeywords(args []string) ([]string, error) {
	keywords := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.TrimSpace(arg) != "" {
			keywords = append(keywords, arg)
		}
	}

	if p.flags.KeywordsFile != "" {
		fromFile, err := keywordfile.Read(p.flags.KeywordsFile)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, fromFile...)
	}

	return keywords, nil
}

// ProcessCLI generates a prompt without the GUI and writes it to w. Blank
// fixed text contributes no term.
func (p *Processor) ProcessCLI(ctx context.Context, fixedText string, keywords []string, w io.Writer) error {
	if len(keywords) == 0 {
		return ErrNoKeywords
	}

	var lines []string
	if strings.TrimSpace(fixedText) != "" {
		lines = prompt.Lines(fixedText)
	}
	lines = append(lines, keywords...)

	output := p.run(ctx, lines)
	if _, err := fmt.Fprintln(w, output); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	if p.store != nil {
		sess := p.store.Load()
		sess.FixedText = strings.TrimSpace(fixedText)
		sess.Keywords = strings.Join(keywords, "\n")
		sess.Output = output
		if err := p.store.Save(sess); err != nil {
			return fmt.Errorf("failed to save work file: %w", err)
		}
	}

	return nil
}

// RunGUIMode launches the GUI application. Log lines written to sink show up
// in the window's log panel.
func (p *Processor) RunGUIMode(sink *gui.LogSink) error {
	guiConfig := &gui.Config{
		Generator: p,
		Store:     p.store,
		Logger:    p.logger,
		LogSink:   sink,
		Backend:   p.backend,
	}

	app := gui.New(guiConfig)
	app.Run()

	return nil
}

package gui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/sdprompt/internal"
	"codeberg.org/snonux/sdprompt/internal/session"
)

// Generator turns fixed text and keyword lines into a finished prompt
type Generator interface {
	Generate(ctx context.Context, fixedText, keywords string) string
}

// Config holds GUI configuration
type Config struct {
	Generator Generator
	Store     *session.Store
	Logger    *zap.Logger
	LogSink   *LogSink
	Backend   string
}

var defaultWindowSize = fyne.NewSize(700, 800)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app       fyne.App
	window    fyne.Window
	clipboard fyne.Clipboard

	// UI elements
	fixedEntry    *CustomMultiLineEntry
	keywordsEntry *CustomMultiLineEntry
	outputEntry   *CustomMultiLineEntry
	statusLabel   *widget.Label
	logViewer     *LogViewer

	// Action buttons
	clearButton    *ttwidget.Button
	generateButton *ttwidget.Button
	copyButton     *ttwidget.Button

	config *Config
	logger *zap.Logger
}

// New creates a new GUI application
func New(config *Config) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.sdprompt")
	return NewWithApp(myApp, config)
}

// NewWithApp creates the GUI on top of an existing fyne app, e.g. fyne's test app
func NewWithApp(fyneApp fyne.App, config *Config) *Application {
	if config == nil {
		config = &Config{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fyneApp.SetIcon(GetAppIcon())

	a := &Application{
		app:    fyneApp,
		config: config,
		logger: logger,
	}

	a.setupUI()
	if config.LogSink != nil {
		config.LogSink.Attach(a.logViewer)
	}
	a.loadSession()

	return a
}

func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Stable Diffusion Prompt Generator v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.clipboard = a.window.Clipboard()

	a.fixedEntry = a.newTextArea("例: 傑作, 最高品質", 2)
	a.keywordsEntry = a.newTextArea("猫\n青い空:1.2", 5)
	a.outputEntry = a.newTextArea("", 3)

	sections := container.NewGridWithRows(3,
		labeledSection("固定テキスト:", a.fixedEntry),
		labeledSection("キーワード (1行に1つ):", a.keywordsEntry),
		labeledSection("生成されたプロンプト:", a.outputEntry),
	)

	// Tooltips are set once the tooltip layer exists
	a.clearButton = ttwidget.NewButtonWithIcon("クリア", theme.ContentClearIcon(), a.onClear)
	a.generateButton = ttwidget.NewButtonWithIcon("プロンプト生成", theme.ConfirmIcon(), a.onGenerate)
	a.generateButton.Importance = widget.HighImportance
	a.copyButton = ttwidget.NewButtonWithIcon("コピー", theme.ContentCopyIcon(), a.onCopy)

	buttons := container.NewGridWithColumns(3,
		a.clearButton,
		a.generateButton,
		a.copyButton,
	)

	backend := a.config.Backend
	if backend == "" {
		backend = "none"
	}
	a.statusLabel = widget.NewLabel(fmt.Sprintf("Ready (translator: %s)", backend))
	a.logViewer = NewLogViewer()

	logAccordion := widget.NewAccordion(widget.NewAccordionItem("ログ", a.logViewer))

	content := container.NewBorder(
		nil,
		container.NewVBox(
			buttons,
			widget.NewSeparator(),
			a.statusLabel,
			logAccordion,
		),
		nil, nil,
		sections,
	)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.window.Resize(defaultWindowSize)
	a.setupTooltips()

	a.window.SetOnClosed(a.onClosed)
	a.setupKeyboardShortcuts()
}

func (a *Application) newTextArea(placeholder string, rows int) *CustomMultiLineEntry {
	entry := NewCustomMultiLineEntry()
	entry.SetPlaceHolder(placeholder)
	entry.SetMinRowsVisible(rows)
	entry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})
	entry.SetOnGenerate(a.onGenerate)
	return entry
}

func labeledSection(label string, entry fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(widget.NewLabel(label), nil, nil, nil, entry)
}

func (a *Application) setupTooltips() {
	a.clearButton.SetToolTip("Clear keywords and output")
	a.generateButton.SetToolTip("Generate prompt (Ctrl+Enter)")
	a.copyButton.SetToolTip("Copy prompt to clipboard")
}

// setupKeyboardShortcuts registers window level shortcuts for when no entry has focus
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().AddShortcut(generateShortcut, func(fyne.Shortcut) {
		a.onGenerate()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onClear empties keywords and output; fixed text is kept
func (a *Application) onClear() {
	a.keywordsEntry.SetText("")
	a.outputEntry.SetText("")
	a.updateStatus("Cleared")
}

// onGenerate runs the pipeline synchronously and persists the session
func (a *Application) onGenerate() {
	if a.config.Generator == nil {
		a.logger.Warn("No prompt generator configured")
		return
	}

	output := a.config.Generator.Generate(context.Background(), a.fixedEntry.Text, a.keywordsEntry.Text)
	a.outputEntry.SetText(output)
	a.saveSession()
	a.updateStatus("Prompt generated")
}

func (a *Application) onCopy() {
	a.clipboard.SetContent(strings.TrimSpace(a.outputEntry.Text))
	a.updateStatus("Copied to clipboard")
}

func (a *Application) onClosed() {
	a.saveSession()
}

func (a *Application) currentSession() session.Session {
	return session.Session{
		FixedText:      strings.TrimSpace(a.fixedEntry.Text),
		Keywords:       strings.TrimSpace(a.keywordsEntry.Text),
		Output:         strings.TrimSpace(a.outputEntry.Text),
		WindowGeometry: FormatGeometry(a.window.Canvas().Size()),
	}
}

func (a *Application) saveSession() {
	if a.config.Store == nil {
		return
	}
	if err := a.config.Store.Save(a.currentSession()); err != nil {
		a.logger.Warn("Failed to save the work file", zap.Error(err))
	}
}

func (a *Application) loadSession() {
	if a.config.Store == nil {
		return
	}

	sess := a.config.Store.Load()
	a.fixedEntry.SetText(sess.FixedText)
	a.keywordsEntry.SetText(sess.Keywords)
	a.outputEntry.SetText(sess.Output)

	if sess.WindowGeometry == "" {
		return
	}
	if size, ok := ParseGeometry(sess.WindowGeometry); ok {
		a.window.Resize(size)
	} else {
		a.logger.Info("Ignoring unparsable window geometry", zap.String("geometry", sess.WindowGeometry))
	}
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

package gui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// maxPendingMessages bounds what a LogSink buffers before a viewer is attached
const maxPendingMessages = 200

// LogSink is an io.Writer that forwards log lines to a LogViewer. Lines
// written before a viewer is attached are buffered and replayed on Attach.
type LogSink struct {
	mu      sync.Mutex
	viewer  *LogViewer
	pending []string
}

// NewLogSink creates an unattached log sink
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Write implements io.Writer
func (s *LogSink) Write(p []byte) (int, error) {
	message := strings.TrimRight(string(p), "\n")
	if message == "" {
		return len(p), nil
	}

	s.mu.Lock()
	viewer := s.viewer
	if viewer == nil {
		s.pending = append(s.pending, message)
		if len(s.pending) > maxPendingMessages {
			s.pending = s.pending[len(s.pending)-maxPendingMessages:]
		}
	}
	s.mu.Unlock()

	if viewer != nil {
		viewer.AddMessage(message)
	}
	return len(p), nil
}

// Sync implements zapcore.WriteSyncer
func (s *LogSink) Sync() error {
	return nil
}

// Attach connects the sink to a viewer and flushes buffered lines into it
func (s *LogSink) Attach(viewer *LogViewer) {
	s.mu.Lock()
	s.viewer = viewer
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, message := range pending {
		viewer.AddMessage(message)
	}
}

// LogViewer is a widget that displays log messages
type LogViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu          sync.Mutex
	messages    []string
	maxMessages int
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{
		maxMessages: 500,
		messages:    make([]string, 0),
	}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 120))
	v.scrollView.Direction = container.ScrollBoth

	v.container = container.NewBorder(
		widget.NewLabel("ログ (新しい順):"),
		nil,
		nil,
		nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// AddMessage adds a message to the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	// Newest first
	v.messages = append([]string{message}, v.messages...)
	if len(v.messages) > v.maxMessages {
		v.messages = v.messages[:v.maxMessages]
	}
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

// Messages returns a copy of the displayed messages, newest first
func (v *LogViewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, len(v.messages))
	copy(out, v.messages)
	return out
}

// Clear clears all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.messages = v.messages[:0]
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText("")
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

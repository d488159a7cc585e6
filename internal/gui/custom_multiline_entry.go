package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CustomMultiLineEntry extends widget.Entry to handle Escape and the
// generate shortcut while the entry has focus
type CustomMultiLineEntry struct {
	widget.Entry
	onEscape   func()
	onGenerate func()
}

// NewCustomMultiLineEntry creates a new custom multi-line entry
func NewCustomMultiLineEntry() *CustomMultiLineEntry {
	entry := &CustomMultiLineEntry{}
	entry.MultiLine = true
	entry.Wrapping = fyne.TextWrapWord
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *CustomMultiLineEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut handles shortcuts; Ctrl/Cmd+Enter triggers generation
func (e *CustomMultiLineEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if isGenerateShortcut(shortcut) && e.onGenerate != nil {
		e.onGenerate()
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *CustomMultiLineEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

// SetOnGenerate sets the callback for the generate shortcut
func (e *CustomMultiLineEntry) SetOnGenerate(f func()) {
	e.onGenerate = f
}

// generateShortcut is Ctrl+Enter (Cmd+Enter on macOS)
var generateShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyReturn,
	Modifier: fyne.KeyModifierShortcutDefault,
}

func isGenerateShortcut(shortcut fyne.Shortcut) bool {
	custom, ok := shortcut.(*desktop.CustomShortcut)
	if !ok {
		return false
	}
	return (custom.KeyName == fyne.KeyReturn || custom.KeyName == fyne.KeyEnter) &&
		custom.Modifier == fyne.KeyModifierShortcutDefault
}

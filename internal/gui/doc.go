// Package gui implements the fyne desktop window: fixed text, keyword and
// output areas, clear/generate/copy actions and an in-window log panel.
package gui

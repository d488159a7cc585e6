package gui

import (
	"fmt"
	"regexp"
	"strconv"

	"fyne.io/fyne/v2"
)

// geometryPattern accepts "WxH" and the X11 style "WxH+X+Y"
var geometryPattern = regexp.MustCompile(`^(\d+)x(\d+)(?:[+-]-?\d+[+-]-?\d+)?$`)

// FormatGeometry renders a window size as "WxH"
func FormatGeometry(size fyne.Size) string {
	return fmt.Sprintf("%dx%d", int(size.Width+0.5), int(size.Height+0.5))
}

// ParseGeometry extracts the window size from a geometry string. Position
// offsets are accepted but ignored since fyne cannot place windows.
func ParseGeometry(geometry string) (fyne.Size, bool) {
	m := geometryPattern.FindStringSubmatch(geometry)
	if m == nil {
		return fyne.Size{}, false
	}

	width, err := strconv.Atoi(m[1])
	if err != nil || width == 0 {
		return fyne.Size{}, false
	}
	height, err := strconv.Atoi(m[2])
	if err != nil || height == 0 {
		return fyne.Size{}, false
	}

	return fyne.NewSize(float32(width), float32(height)), true
}

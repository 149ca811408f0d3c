package renderer

import (
	"fmt"

	"github.com/dshills/hexstorm/internal/renderer/core"
)

// Theme holds the styles used for each screen element.
type Theme struct {
	Header      core.Style
	Offset      core.Style
	Hex         core.Style
	Text        core.Style
	Frame       core.Style
	Placeholder core.Style
	Newline     core.Style
	Twin        core.Style
	Status      core.Style
	Message     core.Style
}

// DefaultTheme returns the built-in theme. It only uses the first sixteen
// palette entries so it works on every terminal.
func DefaultTheme() Theme {
	base := core.DefaultStyle()
	return Theme{
		Header:      base.WithForeground(core.ColorCyan).Bold(),
		Offset:      base.WithForeground(core.ColorYellow),
		Hex:         base,
		Text:        base,
		Frame:       base.WithForeground(core.ColorDarkGray),
		Placeholder: base.WithForeground(core.ColorDarkGray).Dim(),
		Newline:     base.WithBackground(core.ColorDarkGray),
		Twin:        base.Reverse(),
		Status:      base.Reverse(),
		Message:     base.WithForeground(core.ColorRed).Bold(),
	}
}

// ThemeColors are user color overrides. Each value is "default", a palette
// index or a hex color; empty values keep the default.
type ThemeColors struct {
	Header      string
	Offset      string
	Placeholder string
	Newline     string
	Status      string
}

// Apply returns t with the overrides in c applied. Foreground colors are
// set for header, offset and placeholder; background colors for newline
// and status.
func (c ThemeColors) Apply(t Theme) (Theme, error) {
	fields := []struct {
		name  string
		value string
		style *core.Style
		bg    bool
	}{
		{"header", c.Header, &t.Header, false},
		{"offset", c.Offset, &t.Offset, false},
		{"placeholder", c.Placeholder, &t.Placeholder, false},
		{"newline", c.Newline, &t.Newline, true},
		{"status", c.Status, &t.Status, true},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		color, err := core.ParseColor(f.value)
		if err != nil {
			return t, fmt.Errorf("color %s: %w", f.name, err)
		}
		if f.bg {
			*f.style = f.style.WithBackground(color)
			if f.name == "status" {
				// An explicit background replaces reverse video.
				f.style.Attributes &^= core.AttrReverse
			}
		} else {
			*f.style = f.style.WithForeground(color)
		}
	}
	return t, nil
}

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/hexstorm/internal/engine/geometry"
	"github.com/dshills/hexstorm/internal/engine/panel"
	"github.com/dshills/hexstorm/internal/input/keymap"
	"github.com/dshills/hexstorm/internal/renderer"
	"github.com/dshills/hexstorm/internal/renderer/backend"
	"github.com/dshills/hexstorm/internal/renderer/core"
)

// Settings is the typed view of the merged configuration.
type Settings struct {
	Viewer  ViewerSettings      `toml:"viewer"`
	UI      UISettings          `toml:"ui"`
	Logging LoggingSettings     `toml:"logging"`
	Keys    map[string][]string `toml:"keys"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `toml:"-"`
	// Warnings lists settings that were present but ignored.
	Warnings []string `toml:"-"`

	sources func(path string) string
}

// ViewerSettings holds the layout and navigation settings.
type ViewerSettings struct {
	BytesPerGroup uint16 `toml:"bytesPerGroup"`
	GroupsPerRow  uint16 `toml:"groupsPerRow"`
	Rows          uint16 `toml:"rows"`
	SwitchMode    string `toml:"switchMode"`
	Placeholder   string `toml:"placeholder"`
}

// UISettings holds the terminal and drawing settings.
type UISettings struct {
	Backend       string        `toml:"backend"`
	Status        bool          `toml:"status"`
	HighlightTwin bool          `toml:"highlightTwin"`
	Colors        ColorSettings `toml:"colors"`
}

// ColorSettings are theme overrides; see renderer.ThemeColors.
type ColorSettings struct {
	Header      string `toml:"header"`
	Offset      string `toml:"offset"`
	Placeholder string `toml:"placeholder"`
	Newline     string `toml:"newline"`
	Status      string `toml:"status"`
}

// LoggingSettings holds the log destination and verbosity.
type LoggingSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting that has a fixed vocabulary. All problems
// are reported together. Zero geometry values are left to Geometry.
func (s *Settings) Validate() error {
	var errs []error
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{
			Path:    path,
			Message: msg,
			Value:   value,
			Code:    code,
			Source:  s.source(path),
		})
	}

	if _, err := panel.ParseSwitchMode(s.Viewer.SwitchMode); err != nil {
		add("viewer.switchMode", "must be keep, left-edge or right-edge", s.Viewer.SwitchMode, ErrCodeInvalidEnum)
	}
	if _, err := parsePlaceholder(s.Viewer.Placeholder); err != nil {
		add("viewer.placeholder", err.Error(), s.Viewer.Placeholder, ErrCodePatternMismatch)
	}

	switch s.UI.Backend {
	case backend.NameTcell, backend.NameTermbox:
	default:
		add("ui.backend", "must be tcell or termbox", s.UI.Backend, ErrCodeInvalidEnum)
	}
	if _, err := s.ThemeColors().Apply(renderer.DefaultTheme()); err != nil {
		add("ui.colors", err.Error(), s.UI.Colors, ErrCodePatternMismatch)
	}

	level := strings.ToLower(s.Logging.Level)
	valid := false
	for _, l := range logLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		add("logging.level", "must be debug, info, warn or error", s.Logging.Level, ErrCodeInvalidEnum)
	}

	if _, err := s.Keymap(); err != nil {
		add("keys", err.Error(), s.keyActions(), ErrCodeInvalidEnum)
	}

	return errors.Join(errs...)
}

// Geometry builds the layout from the viewer settings. A zero value fails
// with geometry.ErrInvalidConfiguration.
func (s *Settings) Geometry() (geometry.Geometry, error) {
	return geometry.New(s.Viewer.BytesPerGroup, s.Viewer.GroupsPerRow, s.Viewer.Rows)
}

// SwitchMode returns the parsed viewer.switchMode.
func (s *Settings) SwitchMode() (panel.SwitchMode, error) {
	return panel.ParseSwitchMode(s.Viewer.SwitchMode)
}

// ThemeColors returns the color overrides in renderer form.
func (s *Settings) ThemeColors() renderer.ThemeColors {
	c := s.UI.Colors
	return renderer.ThemeColors{
		Header:      c.Header,
		Offset:      c.Offset,
		Placeholder: c.Placeholder,
		Newline:     c.Newline,
		Status:      c.Status,
	}
}

// RendererOptions returns renderer options built from the ui and viewer
// settings.
func (s *Settings) RendererOptions() (renderer.Options, error) {
	opts := renderer.DefaultOptions()

	r, err := parsePlaceholder(s.Viewer.Placeholder)
	if err != nil {
		return opts, fmt.Errorf("viewer.placeholder: %w", err)
	}
	opts.Placeholder = r
	opts.ShowStatus = s.UI.Status
	opts.HighlightTwin = s.UI.HighlightTwin

	theme, err := s.ThemeColors().Apply(opts.Theme)
	if err != nil {
		return opts, fmt.Errorf("ui.colors: %w", err)
	}
	opts.Theme = theme
	return opts, nil
}

// Keymap returns the user keymap built from keys.*, or nil when no keys
// are configured.
func (s *Settings) Keymap() (*keymap.Keymap, error) {
	if len(s.Keys) == 0 {
		return nil, nil
	}
	return keymap.FromSettings(s.Keys)
}

func (s *Settings) keyActions() []string {
	out := make([]string, 0, len(s.Keys))
	for a := range s.Keys {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

func (s *Settings) source(path string) string {
	if s.sources == nil {
		return ""
	}
	return s.sources(path)
}

// parsePlaceholder accepts exactly one printable rune one cell wide.
func parsePlaceholder(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || core.RuneWidth(r) != 1 {
		return 0, errors.New("must be a printable single-width character")
	}
	return r, nil
}

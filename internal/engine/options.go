package engine

import "github.com/dshills/hexstorm/internal/engine/panel"

// Option configures a Session during creation.
type Option func(*Session)

// WithSwitchMode sets where the cursor lands on an explicit panel switch.
func WithSwitchMode(mode panel.SwitchMode) Option {
	return func(s *Session) {
		s.switchMode = mode
	}
}

// WithName sets the display name of the session, usually the file path.
func WithName(name string) Option {
	return func(s *Session) {
		s.name = name
	}
}

package app

import (
	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/input/keymap"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      opts,
		initOrder: make([]string, 0, 4),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initConfig,
		b.initLogger,
		b.initSession,
		b.initKeymap,
		b.initRenderer,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	return nil
}

// initConfig loads and validates the layered settings.
func (b *bootstrapper) initConfig() error {
	s, err := config.Load(b.opts.Config)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := s.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	b.app.settings = s
	b.initOrder = append(b.initOrder, "config")
	return nil
}

// initLogger opens the log file and tags the logger with the session ID.
func (b *bootstrapper) initLogger() error {
	logger := b.opts.Logger
	if logger == nil {
		l, closer, err := OpenLogFile(b.app.settings.Logging.Level, b.app.settings.Logging.File)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		logger = l
		b.app.logCloser = closer
	}
	b.app.logger = logger.WithField("session", b.app.sessionID)
	b.initOrder = append(b.initOrder, "logger")

	s := b.app.settings
	if s.ConfigFile != "" {
		b.app.logger.Info("loaded config %s", s.ConfigFile)
	}
	for _, w := range s.Warnings {
		b.app.logger.Warn("%s", w)
	}
	return nil
}

// initSession builds the geometry and opens the file.
func (b *bootstrapper) initSession() error {
	s := b.app.settings

	g, err := s.Geometry()
	if err != nil {
		return &InitError{Component: "geometry", Err: err}
	}
	mode, err := s.SwitchMode()
	if err != nil {
		return &InitError{Component: "session", Err: err}
	}

	session, err := engine.Open(b.opts.File, g, engine.WithSwitchMode(mode))
	if err != nil {
		return NewOperationError("open", b.opts.File, err)
	}

	b.app.geom = g
	b.app.session = session
	b.initOrder = append(b.initOrder, "session")
	b.app.logger.Debug("layout %d/%d/%d, %d columns", g.BytesPerGroup(), g.GroupsPerRow(), g.Rows(), g.ScreenWidth())
	return nil
}

// initKeymap compiles the default keymap with the user's overrides.
func (b *bootstrapper) initKeymap() error {
	r, err := buildResolver(b.app.settings)
	if err != nil {
		return &InitError{Component: "keymap", Err: err}
	}
	b.app.resolver = r
	b.initOrder = append(b.initOrder, "keymap")
	b.app.logger.Debug("%d keys bound", r.Len())
	return nil
}

// initRenderer resolves the renderer options. The renderer itself is
// created by Run once the backend is up.
func (b *bootstrapper) initRenderer() error {
	opts, err := b.app.settings.RendererOptions()
	if err != nil {
		return &InitError{Component: "renderer", Err: err}
	}
	b.app.rendererOpts = opts
	b.initOrder = append(b.initOrder, "renderer")
	return nil
}

// cleanup performs cleanup in reverse initialization order.
// Called when bootstrap fails partway through.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		b.cleanupComponent(b.initOrder[i])
	}
}

// cleanupComponent cleans up a single component.
func (b *bootstrapper) cleanupComponent(component string) {
	switch component {
	case "session":
		if b.app.session != nil {
			_ = b.app.session.Close()
			b.app.session = nil
		}
	case "logger":
		if b.app.logCloser != nil {
			_ = b.app.logCloser.Close()
			b.app.logCloser = nil
		}
	case "keymap":
		b.app.resolver = nil
	case "config":
		b.app.settings = nil
	}
}

// buildResolver compiles the built-in bindings followed by the keys.*
// settings.
func buildResolver(s *config.Settings) (*keymap.Resolver, error) {
	user, err := s.Keymap()
	if err != nil {
		return nil, err
	}
	return keymap.Compile(keymap.DefaultKeymap(), user)
}

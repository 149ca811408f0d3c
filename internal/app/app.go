// Package app wires configuration, the engine session, the keymap and the
// renderer together and runs the viewer's event loop.
package app

import (
	"errors"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/config/watcher"
	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/engine/geometry"
	"github.com/dshills/hexstorm/internal/input/keymap"
	"github.com/dshills/hexstorm/internal/renderer"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Application is one viewer session from startup to quit.
type Application struct {
	mu sync.RWMutex

	opts      Options
	settings  *config.Settings
	sessionID string

	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics

	geom     geometry.Geometry
	session  *engine.Session
	resolver *keymap.Resolver

	rendererOpts renderer.Options
	renderer     *renderer.Renderer
	backend      backend.Backend

	watcher *watcher.Watcher
	pending *config.Settings

	running  atomic.Bool
	stopping atomic.Bool
	closed   atomic.Bool
}

// Options configures the application.
type Options struct {
	// File is the file to view.
	File string

	// Config controls where settings are loaded from.
	Config config.Options

	// Watch reloads colors, keys and the status line when the config
	// file changes.
	Watch bool

	// Logger replaces the logger built from the logging settings.
	Logger *Logger
}

// New loads the configuration, opens the file and prepares everything the
// event loop needs. Nothing touches the terminal until Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		sessionID: uuid.NewString(),
		metrics:   NewMetrics(),
	}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend. Without one, Run creates the
// backend named by ui.backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run takes over the terminal and processes events until the user quits
// or an error occurs. The terminal is restored before Run returns. A
// clean quit returns nil.
func (app *Application) Run() (err error) {
	if app.closed.Load() {
		return ErrClosed
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	b, err := app.ensureBackend()
	if err != nil {
		return err
	}
	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("%v\n%s", perr, perr.Stack)
			err = perr
		}
	}()

	app.mu.Lock()
	app.renderer = renderer.New(b, app.geom, app.rendererOpts)
	app.mu.Unlock()

	if app.opts.Watch {
		app.startWatcher()
	}
	defer app.stopWatcher()

	app.logger.Info("viewing %s (%d bytes, %d bytes per row)",
		app.session.Name(), app.session.Size(), app.geom.BytesPerRow())

	err = app.eventLoop()
	app.logger.Info("metrics: %s", app.metrics.Snapshot().Summary())

	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		app.logger.Error("%v", err)
	}
	return err
}

func (app *Application) ensureBackend() (backend.Backend, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.backend != nil {
		return app.backend, nil
	}
	b, err := backend.New(app.settings.UI.Backend)
	if err != nil {
		return nil, &InitError{Component: "backend", Err: err}
	}
	app.backend = b
	return b, nil
}

// Stop asks a running event loop to quit as if the user had. It is safe
// to call from any goroutine.
func (app *Application) Stop() {
	app.stopping.Store(true)

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Close releases the file and the log file. It is safe to call more than
// once.
func (app *Application) Close() error {
	if !app.closed.CompareAndSwap(false, true) {
		return nil
	}
	app.stopWatcher()

	var errs []error
	if app.session != nil {
		if err := app.session.Close(); err != nil {
			errs = append(errs, NewComponentError("session", "close", err))
		}
	}
	if app.logCloser != nil {
		if err := app.logCloser.Close(); err != nil {
			errs = append(errs, NewComponentError("logger", "close", err))
		}
	}
	return errors.Join(errs...)
}

// IsRunning returns true while Run is processing events.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// SessionID returns the identifier attached to every log line.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Settings returns the settings in effect.
func (app *Application) Settings() *config.Settings {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.settings
}

// Session returns the engine session.
func (app *Application) Session() *engine.Session {
	return app.session
}

// Resolver returns the compiled keymap.
func (app *Application) Resolver() *keymap.Resolver {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.resolver
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

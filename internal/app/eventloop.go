package app

import (
	"errors"

	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// eventLoop renders, waits for the next event and handles it, one event
// at a time. It returns ErrQuit on a clean quit.
func (app *Application) eventLoop() error {
	if app.stopping.Load() {
		return ErrQuit
	}
	app.render()

	for {
		ev := app.backend.PollEvent()

		timer := StartTimer()
		redraw, err := app.handleBackendEvent(ev)
		app.metrics.RecordEvent(timer.Elapsed())
		if err != nil {
			return err
		}
		if redraw {
			app.render()
		}
	}
}

// handleBackendEvent processes a backend event and reports whether the
// screen needs redrawing.
func (app *Application) handleBackendEvent(ev backend.Event) (bool, error) {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventInterrupt:
		if app.stopping.Load() {
			return false, ErrQuit
		}
		return app.applyReload(), nil
	case backend.EventError:
		return false, NewComponentError("backend", "poll", ev.Err)
	default:
		// Mouse, paste and focus events carry no navigation.
		return false, nil
	}
}

// handleResize re-renders at the new size.
func (app *Application) handleResize(ev backend.Event) (bool, error) {
	app.metrics.RecordResize()
	app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	return true, nil
}

// handleKeyEvent resolves a key to an action and applies it.
func (app *Application) handleKeyEvent(ev backend.Event) (bool, error) {
	action := app.Resolver().Resolve(ev)
	if action == engine.ActionNone {
		app.metrics.RecordUnbound()
		return false, nil
	}
	app.metrics.RecordAction(action)

	before := app.session.Snapshot().CurrentRowOffset
	err := app.session.Apply(action)
	if errors.Is(err, engine.ErrQuit) {
		app.logger.Debug("quit requested")
		return false, ErrQuit
	}
	if err != nil {
		return false, NewOperationError("apply", action.String(), err)
	}

	after := app.session.Snapshot().CurrentRowOffset
	app.metrics.RecordScroll(rowsBetween(before, after, uint64(app.geom.BytesPerRow())))
	return true, nil
}

// render draws the current snapshot and records how long it took.
func (app *Application) render() {
	timer := StartTimer()
	app.renderer.Render(app.session.Name(), app.session.Snapshot())
	app.metrics.RecordRender(timer.Elapsed())
}

func rowsBetween(a, b, bytesPerRow uint64) uint64 {
	if a > b {
		a, b = b, a
	}
	return (b - a) / bytesPerRow
}

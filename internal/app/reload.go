package app

import (
	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/config/watcher"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// startWatcher watches the loaded config file. Failures are logged and
// leave the viewer running without live reload.
func (app *Application) startWatcher() {
	path := app.settings.ConfigFile
	if path == "" {
		return
	}

	w, err := watcher.New()
	if err != nil {
		app.configLog().Warn("config watcher: %v", err)
		return
	}
	if err := w.Watch(path); err != nil {
		app.configLog().Warn("config watcher: %v", err)
		_ = w.Close()
		return
	}
	w.OnChange(app.onConfigChange)
	w.OnError(func(err error) {
		app.configLog().Warn("config watcher: %v", err)
	})

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	app.configLog().Debug("watching %s", path)
}

func (app *Application) stopWatcher() {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
}

// onConfigChange reloads the settings off the event loop and wakes the
// loop to apply them. Invalid settings are logged and dropped.
func (app *Application) onConfigChange(ev watcher.Event) {
	if ev.Op == watcher.OpRemove {
		app.configLog().Warn("config %s removed, keeping current settings", ev.Path)
		return
	}

	s, err := config.Load(app.opts.Config)
	if err == nil {
		err = s.Validate()
	}
	if err != nil {
		app.configLog().Warn("config reload rejected: %v", err)
		return
	}

	app.mu.Lock()
	app.pending = s
	b := app.backend
	app.mu.Unlock()

	if b != nil {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// applyReload installs pending settings on the event loop. Layout, switch
// mode and backend changes only take effect on restart. It reports whether
// anything changed.
func (app *Application) applyReload() bool {
	app.mu.Lock()
	s := app.pending
	app.pending = nil
	app.mu.Unlock()

	if s == nil {
		return false
	}

	resolver, err := buildResolver(s)
	if err != nil {
		app.configLog().Warn("config reload rejected: keys: %v", err)
		return false
	}
	opts, err := s.RendererOptions()
	if err != nil {
		app.configLog().Warn("config reload rejected: %v", err)
		return false
	}

	app.mu.Lock()
	old := app.settings
	app.settings = s
	app.resolver = resolver
	app.rendererOpts = opts
	if app.renderer != nil {
		app.renderer.SetOptions(opts)
	}
	app.mu.Unlock()

	if s.Viewer.BytesPerGroup != old.Viewer.BytesPerGroup ||
		s.Viewer.GroupsPerRow != old.Viewer.GroupsPerRow ||
		s.Viewer.Rows != old.Viewer.Rows ||
		s.Viewer.SwitchMode != old.Viewer.SwitchMode ||
		s.UI.Backend != old.UI.Backend {
		app.configLog().Warn("layout, switch mode and backend changes need a restart")
	}

	app.configLog().SetLevel(ParseLogLevel(s.Logging.Level))
	for _, w := range s.Warnings {
		app.configLog().Warn("%s", w)
	}
	app.metrics.RecordReload()
	app.configLog().Info("reloaded config %s", s.ConfigFile)
	return true
}

func (app *Application) configLog() *Logger {
	return app.Logger().WithComponent("config")
}

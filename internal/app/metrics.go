package app

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/hexstorm/internal/engine"
)

// Metrics counts what the viewer did during a session.
type Metrics struct {
	mu      sync.Mutex
	actions map[engine.Action]uint64

	unbound atomic.Uint64
	scrolls atomic.Uint64
	rows    atomic.Uint64

	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64

	resizes atomic.Uint64
	reloads atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		actions:   make(map[engine.Action]uint64),
		startTime: time.Now(),
	}
}

// RecordAction counts one applied action.
func (m *Metrics) RecordAction(a engine.Action) {
	m.mu.Lock()
	m.actions[a]++
	m.mu.Unlock()
}

// RecordUnbound counts a key press with no binding.
func (m *Metrics) RecordUnbound() {
	m.unbound.Add(1)
}

// RecordScroll counts a window move of rows rows.
func (m *Metrics) RecordScroll(rows uint64) {
	if rows == 0 {
		return
	}
	m.scrolls.Add(1)
	m.rows.Add(rows)
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records event processing timing.
func (m *Metrics) RecordEvent(duration time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(duration.Nanoseconds())
}

// RecordResize counts a terminal resize.
func (m *Metrics) RecordResize() {
	m.resizes.Add(1)
}

// RecordReload counts an applied configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	actions := make(map[string]uint64, len(m.actions))
	var total uint64
	for a, n := range m.actions {
		actions[a.String()] = n
		total += n
	}
	m.mu.Unlock()

	renderCount := m.renderCount.Load()
	eventCount := m.eventCount.Load()

	var avgRender, avgEvent time.Duration
	if renderCount > 0 {
		avgRender = time.Duration(m.renderTotalNs.Load() / int64(renderCount))
	}
	if eventCount > 0 {
		avgEvent = time.Duration(m.eventTotalNs.Load() / int64(eventCount))
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		Actions:      actions,
		ActionCount:  total,
		Unbound:      m.unbound.Load(),
		Scrolls:      m.scrolls.Load(),
		RowsScrolled: m.rows.Load(),
		RenderCount:  renderCount,
		AvgRender:    avgRender,
		MaxRender:    time.Duration(m.renderMaxNs.Load()),
		EventCount:   eventCount,
		AvgEvent:     avgEvent,
		Resizes:      m.resizes.Load(),
		Reloads:      m.reloads.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	Actions      map[string]uint64
	ActionCount  uint64
	Unbound      uint64
	Scrolls      uint64
	RowsScrolled uint64
	RenderCount  uint64
	AvgRender    time.Duration
	MaxRender    time.Duration
	EventCount   uint64
	AvgEvent     time.Duration
	Resizes      uint64
	Reloads      uint64
}

// Summary formats the snapshot as a single log line.
func (s MetricsSnapshot) Summary() string {
	names := make([]string, 0, len(s.Actions))
	for name := range s.Actions {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := make([]string, len(names))
	for i, name := range names {
		counts[i] = fmt.Sprintf("%s=%d", name, s.Actions[name])
	}

	return fmt.Sprintf(
		"uptime=%s events=%d actions=%d [%s] unbound=%d scrolls=%d rows=%d renders=%d avg_render=%s max_render=%s resizes=%d reloads=%d",
		s.Uptime.Round(time.Millisecond), s.EventCount, s.ActionCount, strings.Join(counts, " "),
		s.Unbound, s.Scrolls, s.RowsScrolled, s.RenderCount, s.AvgRender, s.MaxRender,
		s.Resizes, s.Reloads,
	)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

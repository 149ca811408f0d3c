package panel

import (
	"fmt"

	"github.com/dshills/hexstorm/internal/engine/cursor"
)

// SwitchMode controls where the cursor lands on an explicit panel switch.
type SwitchMode uint8

const (
	// SwitchKeepCursor keeps the column when switching panels.
	SwitchKeepCursor SwitchMode = iota
	// SwitchLeftEdge moves the cursor to the first column of the new panel.
	SwitchLeftEdge
	// SwitchRightEdge moves the cursor to the last column of the new panel.
	SwitchRightEdge
)

// String returns the configuration name of the mode.
func (m SwitchMode) String() string {
	switch m {
	case SwitchKeepCursor:
		return "keep"
	case SwitchLeftEdge:
		return "left-edge"
	case SwitchRightEdge:
		return "right-edge"
	default:
		return "unknown"
	}
}

// ParseSwitchMode parses a configuration name into a SwitchMode.
func ParseSwitchMode(s string) (SwitchMode, error) {
	switch s {
	case "", "keep":
		return SwitchKeepCursor, nil
	case "left-edge", "left":
		return SwitchLeftEdge, nil
	case "right-edge", "right":
		return SwitchRightEdge, nil
	default:
		return SwitchKeepCursor, fmt.Errorf("unknown switch mode %q", s)
	}
}

// Scroller moves the window under the panels by whole rows.
type Scroller interface {
	ScrollUp(rows uint64) error
	ScrollDown(rows uint64) error
}

// Coordinator holds the active panel and the per-panel cursors.
// It starts with the Ascii panel active and both cursors at (0, 0).
type Coordinator struct {
	active   Kind
	cursors  [kindCount]*cursor.Cursor
	scroller Scroller
	mode     SwitchMode
}

// NewCoordinator creates a coordinator for panels that are width columns
// wide and height rows tall.
func NewCoordinator(width, height int, scroller Scroller, mode SwitchMode) *Coordinator {
	c := &Coordinator{
		active:   Ascii,
		scroller: scroller,
		mode:     mode,
	}
	for i := range c.cursors {
		c.cursors[i] = cursor.New(width, height)
	}
	return c
}

// Active returns the focused panel.
func (c *Coordinator) Active() Kind {
	return c.active
}

// Cursor returns the cursor of the focused panel.
func (c *Coordinator) Cursor() *cursor.Cursor {
	return c.cursors[c.active]
}

// CursorOf returns the cursor of panel k.
func (c *Coordinator) CursorOf(k Kind) *cursor.Cursor {
	return c.cursors[k]
}

// Mode returns the explicit-switch mode.
func (c *Coordinator) Mode() SwitchMode {
	return c.mode
}

// Left moves the cursor one column left. At the left edge focus moves to
// the other panel with the cursor on its right edge.
func (c *Coordinator) Left() {
	if c.Cursor().MoveLeft().Horizontal() {
		c.switchTo(c.active.Other(), SwitchRightEdge)
	}
}

// Right moves the cursor one column right. At the right edge focus moves
// to the other panel with the cursor on its left edge.
func (c *Coordinator) Right() {
	if c.Cursor().MoveRight().Horizontal() {
		c.switchTo(c.active.Other(), SwitchLeftEdge)
	}
}

// Up moves the cursor one row up. At the top row the window scrolls up by
// one row and the cursor stays pinned.
func (c *Coordinator) Up() error {
	if c.Cursor().MoveUp().Vertical() {
		return c.scroller.ScrollUp(1)
	}
	return nil
}

// Down moves the cursor one row down. At the bottom row the window scrolls
// down by one row and the cursor stays pinned.
func (c *Coordinator) Down() error {
	if c.Cursor().MoveDown().Vertical() {
		return c.scroller.ScrollDown(1)
	}
	return nil
}

// Switch toggles the focused panel using the configured mode.
func (c *Coordinator) Switch() {
	c.switchTo(c.active.Other(), c.mode)
}

// SwitchWith toggles the focused panel using mode instead of the
// configured one.
func (c *Coordinator) SwitchWith(mode SwitchMode) {
	c.switchTo(c.active.Other(), mode)
}

// switchTo focuses panel k. The row carries over from the panel losing
// focus; the column follows mode.
func (c *Coordinator) switchTo(k Kind, mode SwitchMode) {
	from := c.Cursor()
	to := c.cursors[k]

	to.SetRow(from.Row())
	switch mode {
	case SwitchLeftEdge:
		to.SetColumn(0)
	case SwitchRightEdge:
		to.SetColumn(to.LastColumn())
	default:
		to.SetColumn(from.Column())
	}
	c.active = k
}

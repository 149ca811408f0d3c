package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/nsf/termbox-go"

	"github.com/dshills/hexstorm/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(10, 10, core.NewCell('X'))
	b.Clear()

	if got := b.GetCell(10, 10); !got.Equals(core.EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(4, 2)
	b.Init()

	b.SetCell(0, 1, core.NewCell('a'))
	b.SetCell(1, 1, core.NewCell('b'))
	if got := b.Row(1); got != "ab  " {
		t.Errorf("expected %q, got %q", "ab  ", got)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("expected empty row, got %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	_, _, visible = b.CursorPosition()
	if visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 40)

	w, h := b.Size()
	if w != 100 || h != 40 {
		t.Errorf("expected size (100, 40), got (%d, %d)", w, h)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyEnter})

	got := b.PollEvent()
	if got.Type != EventKey || got.Key != KeyEnter {
		t.Errorf("expected enter key event, got %+v", got)
	}
}

func TestNullBackendShutdown(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.Init()
	b.Show()
	b.Show()
	b.Shutdown()

	if b.ShowCount() != 2 {
		t.Errorf("expected 2 shows, got %d", b.ShowCount())
	}
	if !b.IsShutdown() {
		t.Error("expected shutdown to be recorded")
	}
}

func TestModMaskHas(t *testing.T) {
	mod := ModShift | ModCtrl

	if !mod.Has(ModShift) || !mod.Has(ModCtrl) {
		t.Error("should have shift and ctrl")
	}
	if mod.Has(ModAlt) {
		t.Error("should not have alt")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventKey.String() != "key" || EventResize.String() != "resize" || EventNone.String() != "none" {
		t.Error("unexpected event type names")
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New("curses"); err == nil {
		t.Error("expected error for unknown backend")
	}
	b, err := New(NameTermbox)
	if err != nil {
		t.Fatalf("New(termbox) failed: %v", err)
	}
	if _, ok := b.(*Termbox); !ok {
		t.Errorf("expected *Termbox, got %T", b)
	}
}

func TestConvertTcellKey(t *testing.T) {
	tests := []struct {
		key   tcell.Key
		r     rune
		mod   tcell.ModMask
		want  Key
		wantR rune
	}{
		{tcell.KeyRune, 'q', tcell.ModNone, KeyRune, 'q'},
		{tcell.KeyRune, 'c', tcell.ModCtrl, KeyCtrlC, 0},
		{tcell.KeyUp, 0, tcell.ModNone, KeyUp, 0},
		{tcell.KeyPgDn, 0, tcell.ModNone, KeyPageDown, 0},
		{tcell.KeyTab, 0, tcell.ModNone, KeyTab, 0},
		{tcell.KeyEscape, 0, tcell.ModNone, KeyEscape, 0},
		{tcell.KeyCtrlC, 0, tcell.ModCtrl, KeyCtrlC, 0},
		{tcell.KeyF5, 0, tcell.ModNone, KeyNone, 0},
	}

	for _, tt := range tests {
		got, r := convertKey(tt.key, tt.r, tt.mod)
		if got != tt.want || r != tt.wantR {
			t.Errorf("convertKey(%v, %q) = (%v, %q), want (%v, %q)", tt.key, tt.r, got, r, tt.want, tt.wantR)
		}
	}
}

func TestTcellKeyRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyEnter, KeyHome, KeyEnd, KeyPageUp, KeyLeft, KeyRight, KeyCtrlZ} {
		back, _ := convertKey(convertToTcellKey(k), 0, tcell.ModNone)
		if back != k {
			t.Errorf("key %v round-tripped to %v", k, back)
		}
	}
}

func TestTcellStyleRoundTrip(t *testing.T) {
	style := core.DefaultStyle().WithForeground(core.ColorDarkGray).WithBackground(core.ColorFromIndex(236)).Dim()

	got := convertTcellStyle(convertStyle(style))
	if !got.Equals(style) {
		t.Errorf("expected %+v, got %+v", style, got)
	}
}

func TestConvertTermboxKey(t *testing.T) {
	tests := []struct {
		key   termbox.Key
		ch    rune
		want  Key
		wantR rune
	}{
		{0, 'j', KeyRune, 'j'},
		{termbox.KeySpace, 0, KeyRune, ' '},
		{termbox.KeyArrowLeft, 0, KeyLeft, 0},
		{termbox.KeyPgup, 0, KeyPageUp, 0},
		{termbox.KeyEsc, 0, KeyEscape, 0},
		{termbox.KeyCtrlC, 0, KeyCtrlC, 0},
		{termbox.KeyF1, 0, KeyNone, 0},
	}

	for _, tt := range tests {
		got, r := convertTermboxKey(tt.key, tt.ch)
		if got != tt.want || r != tt.wantR {
			t.Errorf("convertTermboxKey(%v, %q) = (%v, %q), want (%v, %q)", tt.key, tt.ch, got, r, tt.want, tt.wantR)
		}
	}
}

func TestTermboxColors(t *testing.T) {
	if termboxColor(core.ColorDefault) != termbox.ColorDefault {
		t.Error("default should map to termbox default")
	}
	if termboxColor(core.ColorFromIndex(8)) != termbox.Attribute(9) {
		t.Error("palette index should be offset by one")
	}
	if got := termboxColor(core.ColorFromRGB(255, 0, 0)); got != termbox.Attribute(196+1) {
		t.Errorf("pure red should map to cube index 196, got %d", got-1)
	}

	style := core.DefaultStyle().WithForeground(core.ColorDarkGray).Bold()
	fg, bg := termboxStyle(style)
	back := styleFromTermbox(fg, bg)
	if !back.Equals(style) {
		t.Errorf("expected %+v, got %+v", style, back)
	}
}

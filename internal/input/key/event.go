package key

import (
	"unicode"

	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character. Shift is folded into
// the case of letters and then dropped.
func NewRuneEvent(r rune, mods Modifier) Event {
	if mods.Has(ModShift) {
		r = unicode.ToUpper(r)
		mods &^= ModShift
	}
	if mods.Has(ModCtrl) {
		r = unicode.ToLower(r)
	}
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns the canonical specification, e.g. "Ctrl+C", "PgDn", "g".
// Parse accepts every string this returns.
func (e Event) String() string {
	var name string
	switch {
	case e.IsRune() && e.Rune == ' ':
		name = "Space"
	case e.IsRune() && e.Modifiers.Has(ModCtrl):
		name = string(unicode.ToUpper(e.Rune))
	case e.IsRune():
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}
	if e.Modifiers == ModNone {
		return name
	}
	return e.Modifiers.String() + "+" + name
}

// FromBackend converts a backend key event. ok is false for non-key events
// and keys the input system does not model.
func FromBackend(ev backend.Event) (Event, bool) {
	if ev.Type != backend.EventKey {
		return Event{}, false
	}

	mods := modifiersFromBackend(ev.Mod)
	if ev.Key >= backend.KeyCtrlA && ev.Key <= backend.KeyCtrlZ {
		r := 'a' + rune(ev.Key-backend.KeyCtrlA)
		return NewRuneEvent(r, mods|ModCtrl), true
	}
	if ev.Key == backend.KeyRune {
		return NewRuneEvent(ev.Rune, mods), true
	}

	k, ok := backendKeys[ev.Key]
	if !ok {
		return Event{}, false
	}
	// Shift is meaningful on special keys only as part of Backtab.
	return NewSpecialEvent(k, mods&^ModShift), true
}

var backendKeys = map[backend.Key]Key{
	backend.KeyEscape:    KeyEscape,
	backend.KeyEnter:     KeyEnter,
	backend.KeyTab:       KeyTab,
	backend.KeyBacktab:   KeyBacktab,
	backend.KeyBackspace: KeyBackspace,
	backend.KeyDelete:    KeyDelete,
	backend.KeyHome:      KeyHome,
	backend.KeyEnd:       KeyEnd,
	backend.KeyPageUp:    KeyPageUp,
	backend.KeyPageDown:  KeyPageDown,
	backend.KeyUp:        KeyUp,
	backend.KeyDown:      KeyDown,
	backend.KeyLeft:      KeyLeft,
	backend.KeyRight:     KeyRight,
}

func modifiersFromBackend(m backend.ModMask) Modifier {
	var mods Modifier
	if m.Has(backend.ModShift) {
		mods |= ModShift
	}
	if m.Has(backend.ModCtrl) {
		mods |= ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mods |= ModAlt
	}
	if m.Has(backend.ModMeta) {
		mods |= ModMeta
	}
	return mods
}

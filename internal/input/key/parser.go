package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "G", "1", "@"
//   - Special keys: "Enter", "Esc", "Tab", "PgUp", "Space"
//   - With modifiers: "Ctrl+C", "Alt+j"
//   - Vim-style: "<C-c>", "<Esc>", "<CR>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"))
	}

	// "+" alone is a rune; "Ctrl++" binds Ctrl and the plus key.
	if len(spec) > 1 && strings.Contains(spec, "+") {
		parts := strings.Split(spec, "+")
		if strings.HasSuffix(spec, "++") {
			parts = append(parts[:len(parts)-2], "+")
		}
		return parseParts(parts)
	}

	return parseKey(spec, ModNone)
}

// parseParts parses modifiers followed by a final key part.
func parseParts(parts []string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseKey parses a key name or single character with already-known
// modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

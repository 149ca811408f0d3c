// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// Events are comparable and are used directly as map keys by the keymap.
// Rune events never carry Shift: the case of the rune already says it.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "G", "1", "Enter", "Esc", "PgDn"
//   - With modifiers: "Ctrl+C", "Alt+j"
//   - Vim-style: "<C-c>", "<Esc>", "<CR>"
package key

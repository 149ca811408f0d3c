// Package input groups the keyboard handling of hexstorm.
//
// Raw terminal events become viewer actions in two steps:
//
//   - key parses key names such as "PgDn" or "Ctrl+C" and converts
//     backend events into normalized key events
//   - keymap binds key events to engine actions, merging the built-in
//     bindings with the keys.* settings
//
// # Bindings
//
// The defaults move with the arrow keys or h/j/k/l, switch panels with s
// or Tab, page with PgUp/PgDn, jump with Home/End or g/G and quit with q,
// Esc or Ctrl+C. A user binding list replaces every default key of the
// action it names, and the key "none" leaves an action unbound:
//
//	[keys]
//	"app.quit" = ["Q"]
//	"panel.switch" = "none"
//
// There are no modes or multi-key sequences; every key maps to at most one
// action and unbound keys do nothing.
package input

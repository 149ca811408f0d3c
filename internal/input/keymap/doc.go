// Package keymap provides key binding management for the hexstorm viewer.
//
// The keymap system maps single key presses to engine actions.
//
// # Key Concepts
//
// Keymap: A named, declarative list of bindings. The default keymap ships
// with the viewer; a user keymap is built from the keys.* settings.
//
// Binding: Maps a key specification to an action name such as
// "cursor.left" or "view.pageDown".
//
// Resolver: The compiled lookup table built from one or more keymaps.
//
// # Binding Precedence
//
// Keymaps are compiled in order and later keymaps win. A keymap marked
// Replace first drops every existing key of each action it names, so a
// user entry for "app.quit" replaces the default quit keys instead of
// adding to them. Binding a key to "none" unbinds it.
//
// # Usage
//
//	user, err := keymap.FromSettings(cfg.Keys)
//	if err != nil {
//		return err
//	}
//	resolver, err := keymap.Compile(keymap.DefaultKeymap(), user)
//	if err != nil {
//		return err
//	}
//	action := resolver.Resolve(ev)
package keymap

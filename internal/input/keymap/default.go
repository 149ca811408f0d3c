package keymap

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			// Movement
			{Keys: "Left", Action: "cursor.left", Description: "Move left"},
			{Keys: "h", Action: "cursor.left", Description: "Move left"},
			{Keys: "Right", Action: "cursor.right", Description: "Move right"},
			{Keys: "l", Action: "cursor.right", Description: "Move right"},
			{Keys: "Up", Action: "cursor.up", Description: "Move up"},
			{Keys: "k", Action: "cursor.up", Description: "Move up"},
			{Keys: "Down", Action: "cursor.down", Description: "Move down"},
			{Keys: "j", Action: "cursor.down", Description: "Move down"},

			// Panels
			{Keys: "s", Action: "panel.switch", Description: "Switch panel"},
			{Keys: "Tab", Action: "panel.switch", Description: "Switch panel"},

			// Scrolling
			{Keys: "PgUp", Action: "view.pageUp", Description: "Page up"},
			{Keys: "PgDn", Action: "view.pageDown", Description: "Page down"},
			{Keys: "Home", Action: "view.top", Description: "Go to start of file"},
			{Keys: "g", Action: "view.top", Description: "Go to start of file"},
			{Keys: "End", Action: "view.bottom", Description: "Go to end of file"},
			{Keys: "G", Action: "view.bottom", Description: "Go to end of file"},

			// Application
			{Keys: "q", Action: "app.quit", Description: "Quit"},
			{Keys: "Esc", Action: "app.quit", Description: "Quit"},
			{Keys: "Ctrl+C", Action: "app.quit", Description: "Quit"},
		},
	}
}

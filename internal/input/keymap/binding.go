package keymap

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "j", "G", "PgDn", "Ctrl+C", "<C-c>"
	Keys string

	// Action is the engine action name.
	// Examples: "cursor.down", "panel.switch", "app.quit"
	Action string

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

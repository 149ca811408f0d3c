package engine

import "fmt"

// Action is an abstract navigation request produced by key decoding.
type Action uint8

const (
	// ActionNone does nothing. Unbound keys map to it.
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionSwitchPanel
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionBottom
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionLeft:        "cursor.left",
	ActionRight:       "cursor.right",
	ActionUp:          "cursor.up",
	ActionDown:        "cursor.down",
	ActionSwitchPanel: "panel.switch",
	ActionPageUp:      "view.pageUp",
	ActionPageDown:    "view.pageDown",
	ActionTop:         "view.top",
	ActionBottom:      "view.bottom",
	ActionQuit:        "app.quit",
}

// String returns the action's binding name, e.g. "cursor.left".
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction maps a binding name back to its Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Actions returns every action except ActionNone, in declaration order.
func Actions() []Action {
	out := make([]Action, 0, len(actionNames)-1)
	for a := ActionLeft; a <= ActionQuit; a++ {
		out = append(out, a)
	}
	return out
}

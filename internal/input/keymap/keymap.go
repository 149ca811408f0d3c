package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/input/key"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Keymap holds a named list of key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Source indicates where this keymap was defined.
	// Examples: "default", "user"
	Source string

	// Replace drops the existing keys of every action this keymap binds
	// before its own bindings are added.
	Replace bool

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Unbind lists actions left without keys.
	Unbind []string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := key.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		if _, err := engine.ParseAction(b.Action); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	for _, action := range k.Unbind {
		if _, err := engine.ParseAction(action); err != nil {
			return err
		}
	}
	return nil
}

// unboundSpec is the key specification that leaves an action without keys.
const unboundSpec = "none"

// FromSettings builds the user keymap from keys.* settings, which map an
// action name to its key specifications.
func FromSettings(keys map[string][]string) (*Keymap, error) {
	km := NewKeymap("user").WithSource("user")
	km.Replace = true

	actions := make([]string, 0, len(keys))
	for action := range keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		specs := keys[action]
		if len(specs) == 0 || (len(specs) == 1 && strings.EqualFold(specs[0], unboundSpec)) {
			km.Unbind = append(km.Unbind, action)
			continue
		}
		for _, spec := range specs {
			km.Add(spec, action)
		}
	}
	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("keymap %q: %w", km.Name, err)
	}
	return km, nil
}

// Resolver is the compiled key lookup table.
type Resolver struct {
	table map[key.Event]engine.Action
}

// Compile builds a resolver from keymaps. Later keymaps take precedence.
func Compile(keymaps ...*Keymap) (*Resolver, error) {
	r := &Resolver{table: make(map[key.Event]engine.Action)}

	for _, km := range keymaps {
		if km == nil {
			continue
		}
		if err := km.Validate(); err != nil {
			return nil, fmt.Errorf("keymap %q: %w", km.Name, err)
		}
		for _, name := range km.Unbind {
			a, _ := engine.ParseAction(name)
			r.unbindAction(a)
		}
		if km.Replace {
			for _, b := range km.Bindings {
				a, _ := engine.ParseAction(b.Action)
				r.unbindAction(a)
			}
		}
		for _, b := range km.Bindings {
			ev, _ := key.Parse(b.Keys)
			a, _ := engine.ParseAction(b.Action)
			if a == engine.ActionNone {
				delete(r.table, ev)
				continue
			}
			r.table[ev] = a
		}
	}
	return r, nil
}

func (r *Resolver) unbindAction(a engine.Action) {
	if a == engine.ActionNone {
		return
	}
	for ev, bound := range r.table {
		if bound == a {
			delete(r.table, ev)
		}
	}
}

// Lookup returns the action bound to ev, or ActionNone.
func (r *Resolver) Lookup(ev key.Event) engine.Action {
	return r.table[ev]
}

// Resolve maps a raw backend event to an action. Non-key events and
// unbound keys resolve to ActionNone.
func (r *Resolver) Resolve(ev backend.Event) engine.Action {
	k, ok := key.FromBackend(ev)
	if !ok {
		return engine.ActionNone
	}
	return r.Lookup(k)
}

// Keys returns the sorted key specifications bound to a.
func (r *Resolver) Keys(a engine.Action) []string {
	var out []string
	for ev, bound := range r.table {
		if bound == a {
			out = append(out, ev.String())
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of bound keys.
func (r *Resolver) Len() int {
	return len(r.table)
}

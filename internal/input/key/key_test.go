package key

import (
	"errors"
	"testing"

	"github.com/dshills/hexstorm/internal/renderer/backend"
)

func TestParseSingleCharacter(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
	}{
		{"a", 'a'},
		{"G", 'G'},
		{"1", '1'},
		{"@", '@'},
		{"+", '+'},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != KeyRune {
			t.Errorf("Parse(%q) key = %v, want KeyRune", tt.spec, event.Key)
		}
		if event.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, event.Rune, tt.wantRune)
		}
		if event.Modifiers != ModNone {
			t.Errorf("Parse(%q) modifiers = %v, want none", tt.spec, event.Modifiers)
		}
	}
}

func TestParseSpecialKeys(t *testing.T) {
	tests := []struct {
		spec    string
		wantKey Key
	}{
		{"Enter", KeyEnter},
		{"Esc", KeyEscape},
		{"escape", KeyEscape},
		{"Tab", KeyTab},
		{"PgUp", KeyPageUp},
		{"PageDown", KeyPageDown},
		{"Home", KeyHome},
		{"End", KeyEnd},
		{"Left", KeyLeft},
		{"<CR>", KeyEnter},
		{"<Esc>", KeyEscape},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, event.Key, tt.wantKey)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"Ctrl+C", Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}},
		{"ctrl+c", Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}},
		{"<C-c>", Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}},
		{"Alt+j", Event{Key: KeyRune, Rune: 'j', Modifiers: ModAlt}},
		{"Shift+g", Event{Key: KeyRune, Rune: 'G'}},
		{"Ctrl++", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"Ctrl+Space", Event{Key: KeyRune, Rune: ' ', Modifiers: ModCtrl}},
		{"Alt+Down", Event{Key: KeyDown, Modifiers: ModAlt}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("  "); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("expected ErrEmptySpec, got %v", err)
	}
	for _, spec := range []string{"Hyper+x", "notakey", "Ctrl+", "<X-a>"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q): expected ErrInvalidSpec, got %v", spec, err)
		}
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	for _, spec := range []string{"q", "G", "Ctrl+C", "Alt+j", "PgDn", "Tab", "Space", "Ctrl+Space", "Alt+Down"} {
		ev := MustParse(spec)
		if ev.String() != spec {
			t.Errorf("MustParse(%q).String() = %q", spec, ev.String())
		}
		back, err := Parse(ev.String())
		if err != nil || back != ev {
			t.Errorf("round trip of %q gave %+v, %v", spec, back, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("Hyper+x")
}

func TestFromBackend(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
		want Event
		ok   bool
	}{
		{"rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'j'}, MustParse("j"), true},
		{"shifted rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'G', Mod: backend.ModShift}, MustParse("G"), true},
		{"ctrl letter", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlC, Mod: backend.ModCtrl}, MustParse("Ctrl+C"), true},
		{"arrow", backend.Event{Type: backend.EventKey, Key: backend.KeyLeft}, MustParse("Left"), true},
		{"page", backend.Event{Type: backend.EventKey, Key: backend.KeyPageDown}, MustParse("PgDn"), true},
		{"escape", backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}, MustParse("Esc"), true},
		{"unknown key", backend.Event{Type: backend.EventKey, Key: backend.KeyNone}, Event{}, false},
		{"resize", backend.Event{Type: backend.EventResize, Width: 80, Height: 24}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromBackend(tt.ev)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyPageUp.String() != "PgUp" || KeyEscape.String() != "Esc" {
		t.Error("unexpected key names")
	}
	if Key(999).String() != "Key(999)" {
		t.Errorf("unexpected name %q", Key(999).String())
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
	if KeyRune.IsSpecial() || !KeyTab.IsSpecial() {
		t.Error("IsSpecial misclassified")
	}
}

func TestModifierString(t *testing.T) {
	if s := (ModCtrl | ModAlt).String(); s != "Ctrl+Alt" {
		t.Errorf("unexpected %q", s)
	}
	if ModifierFromName("Control") != ModCtrl || ModifierFromName("hyper") != ModNone {
		t.Error("ModifierFromName mismatch")
	}
}

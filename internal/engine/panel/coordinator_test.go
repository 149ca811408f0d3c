package panel

import (
	"errors"
	"testing"
)

type scrollCall struct {
	up   bool
	rows uint64
}

type fakeScroller struct {
	calls []scrollCall
	err   error
}

func (f *fakeScroller) ScrollUp(rows uint64) error {
	f.calls = append(f.calls, scrollCall{up: true, rows: rows})
	return f.err
}

func (f *fakeScroller) ScrollDown(rows uint64) error {
	f.calls = append(f.calls, scrollCall{up: false, rows: rows})
	return f.err
}

func newTestCoordinator(mode SwitchMode) (*Coordinator, *fakeScroller) {
	s := &fakeScroller{}
	return NewCoordinator(16, 10, s, mode), s
}

func TestKindString(t *testing.T) {
	if Hex.String() != "hex" || Ascii.String() != "ascii" {
		t.Errorf("unexpected names %q %q", Hex, Ascii)
	}
	if Hex.Other() != Ascii || Ascii.Other() != Hex {
		t.Error("Other should toggle")
	}
	if Kind(7).Valid() {
		t.Error("Kind(7) should be invalid")
	}
}

func TestCoordinatorInitialState(t *testing.T) {
	c, _ := newTestCoordinator(SwitchKeepCursor)

	if c.Active() != Ascii {
		t.Errorf("expected Ascii active, got %v", c.Active())
	}
	for _, k := range []Kind{Hex, Ascii} {
		cur := c.CursorOf(k)
		if cur.Column() != 0 || cur.Row() != 0 {
			t.Errorf("%v cursor: expected (0, 0), got %v", k, cur)
		}
	}
}

func TestLeftAtEdgeSwitchesToRightEdge(t *testing.T) {
	c, s := newTestCoordinator(SwitchKeepCursor)

	c.Left()
	if c.Active() != Hex {
		t.Fatalf("expected Hex active, got %v", c.Active())
	}
	if c.Cursor().Column() != 15 {
		t.Errorf("expected column 15, got %d", c.Cursor().Column())
	}
	if len(s.calls) != 0 {
		t.Errorf("horizontal edge must not scroll, got %v", s.calls)
	}
}

func TestRightAtEdgeSwitchesToLeftEdge(t *testing.T) {
	c, _ := newTestCoordinator(SwitchKeepCursor)
	c.Cursor().SetColumn(15)
	c.Cursor().SetRow(4)

	c.Right()
	if c.Active() != Hex {
		t.Fatalf("expected Hex active, got %v", c.Active())
	}
	if c.Cursor().Column() != 0 {
		t.Errorf("expected column 0, got %d", c.Cursor().Column())
	}
	if c.Cursor().Row() != 4 {
		t.Errorf("row should carry over, got %d", c.Cursor().Row())
	}
}

func TestHorizontalTravelIsContinuous(t *testing.T) {
	c, _ := newTestCoordinator(SwitchKeepCursor)

	// 16 steps right reach the Ascii right edge, the 17th crosses into Hex.
	for i := 0; i < 15; i++ {
		c.Right()
	}
	if c.Active() != Ascii || c.Cursor().Column() != 15 {
		t.Fatalf("expected Ascii column 15, got %v column %d", c.Active(), c.Cursor().Column())
	}
	c.Right()
	if c.Active() != Hex || c.Cursor().Column() != 0 {
		t.Fatalf("expected Hex column 0, got %v column %d", c.Active(), c.Cursor().Column())
	}

	// And back again.
	c.Left()
	if c.Active() != Ascii || c.Cursor().Column() != 15 {
		t.Errorf("expected Ascii column 15, got %v column %d", c.Active(), c.Cursor().Column())
	}
}

func TestMovesInsidePanel(t *testing.T) {
	c, s := newTestCoordinator(SwitchKeepCursor)

	c.Right()
	c.Right()
	if err := c.Down(); err != nil {
		t.Fatalf("Down failed: %v", err)
	}
	if c.Active() != Ascii {
		t.Errorf("expected Ascii active, got %v", c.Active())
	}
	if c.Cursor().Column() != 2 || c.Cursor().Row() != 1 {
		t.Errorf("expected (2, 1), got %v", c.Cursor())
	}
	c.Left()
	if err := c.Up(); err != nil {
		t.Fatalf("Up failed: %v", err)
	}
	if c.Cursor().Column() != 1 || c.Cursor().Row() != 0 {
		t.Errorf("expected (1, 0), got %v", c.Cursor())
	}
	if len(s.calls) != 0 {
		t.Errorf("expected no scrolls, got %v", s.calls)
	}
}

func TestVerticalEdgesScroll(t *testing.T) {
	c, s := newTestCoordinator(SwitchKeepCursor)

	if err := c.Up(); err != nil {
		t.Fatalf("Up failed: %v", err)
	}
	if len(s.calls) != 1 || !s.calls[0].up || s.calls[0].rows != 1 {
		t.Fatalf("expected one ScrollUp(1), got %v", s.calls)
	}
	if c.Cursor().Row() != 0 {
		t.Errorf("row should stay pinned at 0, got %d", c.Cursor().Row())
	}

	c.Cursor().SetRow(9)
	if err := c.Down(); err != nil {
		t.Fatalf("Down failed: %v", err)
	}
	if len(s.calls) != 2 || s.calls[1].up || s.calls[1].rows != 1 {
		t.Fatalf("expected ScrollDown(1), got %v", s.calls)
	}
	if c.Cursor().Row() != 9 {
		t.Errorf("row should stay pinned at 9, got %d", c.Cursor().Row())
	}
	if c.Active() != Ascii {
		t.Errorf("vertical edge must not switch panels, got %v", c.Active())
	}
}

func TestScrollErrorPropagates(t *testing.T) {
	c, s := newTestCoordinator(SwitchKeepCursor)
	s.err = errors.New("read failed")

	if err := c.Up(); !errors.Is(err, s.err) {
		t.Errorf("expected scroll error, got %v", err)
	}
}

func TestSwitchModes(t *testing.T) {
	tests := []struct {
		mode SwitchMode
		want int
	}{
		{SwitchKeepCursor, 6},
		{SwitchLeftEdge, 0},
		{SwitchRightEdge, 15},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c, _ := newTestCoordinator(tt.mode)
			c.Cursor().SetColumn(6)
			c.Cursor().SetRow(3)

			c.Switch()
			if c.Active() != Hex {
				t.Fatalf("expected Hex active, got %v", c.Active())
			}
			if c.Cursor().Column() != tt.want {
				t.Errorf("expected column %d, got %d", tt.want, c.Cursor().Column())
			}
			if c.Cursor().Row() != 3 {
				t.Errorf("row should carry over, got %d", c.Cursor().Row())
			}

			c.Switch()
			if c.Active() != Ascii {
				t.Errorf("expected Ascii active after second switch, got %v", c.Active())
			}
		})
	}
}

func TestSwitchWithOverridesMode(t *testing.T) {
	c, _ := newTestCoordinator(SwitchKeepCursor)
	c.Cursor().SetColumn(6)

	c.SwitchWith(SwitchRightEdge)
	if c.Cursor().Column() != 15 {
		t.Errorf("expected column 15, got %d", c.Cursor().Column())
	}
	if c.Mode() != SwitchKeepCursor {
		t.Errorf("configured mode should be unchanged, got %v", c.Mode())
	}
}

func TestParseSwitchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SwitchMode
		wantErr bool
	}{
		{"", SwitchKeepCursor, false},
		{"keep", SwitchKeepCursor, false},
		{"left-edge", SwitchLeftEdge, false},
		{"right", SwitchRightEdge, false},
		{"sideways", SwitchKeepCursor, true},
	}

	for _, tt := range tests {
		got, err := ParseSwitchMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSwitchMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSwitchMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

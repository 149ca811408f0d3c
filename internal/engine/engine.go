package engine

import (
	"fmt"
	"io"

	"github.com/dshills/hexstorm/internal/engine/cursor"
	"github.com/dshills/hexstorm/internal/engine/geometry"
	"github.com/dshills/hexstorm/internal/engine/panel"
	"github.com/dshills/hexstorm/internal/engine/window"
)

// Re-export commonly used types for convenience.
type (
	// Geometry is the fixed screen layout of a session.
	Geometry = geometry.Geometry

	// PanelKind identifies the hex or the ascii panel.
	PanelKind = panel.Kind

	// SwitchMode controls cursor placement on an explicit panel switch.
	SwitchMode = panel.SwitchMode
)

// Re-export constants.
const (
	PanelHex   = panel.Hex
	PanelAscii = panel.Ascii

	SwitchKeepCursor = panel.SwitchKeepCursor
	SwitchLeftEdge   = panel.SwitchLeftEdge
	SwitchRightEdge  = panel.SwitchRightEdge
)

// Session is the aggregate of one open file: geometry, window and panels.
type Session struct {
	name       string
	geom       geometry.Geometry
	reader     *window.Reader
	panels     *panel.Coordinator
	switchMode panel.SwitchMode
}

// New creates a session over src. The window starts at offset 0, the ascii
// panel is focused and both cursors sit at (0, 0).
func New(src io.ReadSeeker, g geometry.Geometry, opts ...Option) (*Session, error) {
	r, err := window.Open(src, g)
	if err != nil {
		return nil, err
	}
	return newSession(r, g, opts), nil
}

// Open creates a session over the file at path. Close releases it.
func Open(path string, g geometry.Geometry, opts ...Option) (*Session, error) {
	r, err := window.OpenFile(path, g)
	if err != nil {
		return nil, err
	}
	s := newSession(r, g, append([]Option{WithName(path)}, opts...))
	return s, nil
}

func newSession(r *window.Reader, g geometry.Geometry, opts []Option) *Session {
	s := &Session{
		geom:   g,
		reader: r,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.panels = panel.NewCoordinator(g.BytesPerRow(), g.Rows(), r, s.switchMode)
	return s
}

// Close releases the underlying file if the session opened it.
func (s *Session) Close() error {
	return s.reader.Close()
}

// Name returns the display name of the session.
func (s *Session) Name() string {
	return s.name
}

// Geometry returns the session layout.
func (s *Session) Geometry() geometry.Geometry {
	return s.geom
}

// Size returns the file size in bytes.
func (s *Session) Size() uint64 {
	return s.reader.Size()
}

// ActivePanel returns the focused panel.
func (s *Session) ActivePanel() panel.Kind {
	return s.panels.Active()
}

// Cursor returns the cursor of the focused panel.
func (s *Session) Cursor() *cursor.Cursor {
	return s.panels.Cursor()
}

// Apply performs a single action. ActionQuit returns ErrQuit; scroll
// failures are returned unchanged and leave the window where it was.
func (s *Session) Apply(a Action) error {
	switch a {
	case ActionNone:
		return nil
	case ActionLeft:
		s.panels.Left()
	case ActionRight:
		s.panels.Right()
	case ActionUp:
		return s.panels.Up()
	case ActionDown:
		return s.panels.Down()
	case ActionSwitchPanel:
		s.panels.Switch()
	case ActionPageUp:
		return s.reader.ScrollUp(uint64(s.geom.Rows()))
	case ActionPageDown:
		return s.reader.ScrollDown(uint64(s.geom.Rows()))
	case ActionTop:
		return s.top()
	case ActionBottom:
		return s.bottom()
	case ActionQuit:
		return ErrQuit
	default:
		return fmt.Errorf("apply %v: unsupported action", a)
	}
	return nil
}

// top moves the window to offset 0 and the cursor to the first row.
func (s *Session) top() error {
	if err := s.scrollToRow(0); err != nil {
		return err
	}
	s.Cursor().SetRow(0)
	return nil
}

// bottom shows the last row of the file on the last screen row, or as low
// as the file allows, and puts the cursor on it.
func (s *Session) bottom() error {
	last := s.reader.LastOriginRow()
	target := uint64(0)
	if span := uint64(s.geom.Rows() - 1); last > span {
		target = last - span
	}
	if err := s.scrollToRow(target); err != nil {
		return err
	}
	s.Cursor().SetRow(int(last - target))
	return nil
}

func (s *Session) scrollToRow(target uint64) error {
	cur := s.reader.CurrentOriginRow()
	switch {
	case target > cur:
		return s.reader.ScrollDown(target - cur)
	case target < cur:
		return s.reader.ScrollUp(cur - target)
	default:
		return nil
	}
}

// CursorOffset returns the file offset under the focused cursor and whether
// that offset holds a byte.
func (s *Session) CursorOffset() (uint64, bool) {
	return s.Snapshot().CursorOffset()
}

// Snapshot captures everything a renderer needs for one frame.
func (s *Session) Snapshot() Snapshot {
	c := s.Cursor()
	return Snapshot{
		Window:           s.reader.Buffer(),
		BytesPerGroup:    s.geom.BytesPerGroup(),
		GroupsPerRow:     s.geom.GroupsPerRow(),
		BytesPerRow:      s.geom.BytesPerRow(),
		Rows:             s.geom.Rows(),
		CurrentRowOffset: s.reader.Origin(),
		FileSize:         s.reader.Size(),
		ActivePanel:      s.panels.Active(),
		CursorColumn:     c.Column(),
		CursorRow:        c.Row(),
	}
}

package engine

import "github.com/dshills/hexstorm/internal/engine/panel"

// Snapshot is a read-only view of a session for rendering.
// Window aliases the session buffer and is only valid until the next Apply.
type Snapshot struct {
	Window        []byte
	BytesPerGroup int
	GroupsPerRow  int
	BytesPerRow   int
	Rows          int

	// CurrentRowOffset is the file offset of Window[0].
	CurrentRowOffset uint64
	FileSize         uint64

	ActivePanel  panel.Kind
	CursorColumn int
	CursorRow    int
}

// RowCount returns the number of screen rows that hold at least one byte.
func (s Snapshot) RowCount() int {
	if s.BytesPerRow == 0 {
		return 0
	}
	return (len(s.Window) + s.BytesPerRow - 1) / s.BytesPerRow
}

// Row returns the bytes shown on screen row i, which may be short or empty
// near the end of the file.
func (s Snapshot) Row(i int) []byte {
	start := i * s.BytesPerRow
	if i < 0 || start >= len(s.Window) {
		return nil
	}
	end := min(start+s.BytesPerRow, len(s.Window))
	return s.Window[start:end]
}

// RowOffset returns the file offset of the first byte on screen row i.
func (s Snapshot) RowOffset(i int) uint64 {
	return s.CurrentRowOffset + uint64(i)*uint64(s.BytesPerRow)
}

// CursorOffset returns the file offset under the cursor and whether a byte
// exists there.
func (s Snapshot) CursorOffset() (uint64, bool) {
	idx := s.CursorRow*s.BytesPerRow + s.CursorColumn
	return s.RowOffset(s.CursorRow) + uint64(s.CursorColumn), idx < len(s.Window)
}

// CursorByte returns the byte under the cursor, if any.
func (s Snapshot) CursorByte() (byte, bool) {
	idx := s.CursorRow*s.BytesPerRow + s.CursorColumn
	if idx < 0 || idx >= len(s.Window) {
		return 0, false
	}
	return s.Window[idx], true
}

// TotalRows returns the number of rows the whole file occupies.
func (s Snapshot) TotalRows() uint64 {
	if s.BytesPerRow == 0 {
		return 0
	}
	bpr := uint64(s.BytesPerRow)
	return (s.FileSize + bpr - 1) / bpr
}

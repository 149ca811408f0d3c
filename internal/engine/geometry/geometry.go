// Package geometry computes the fixed screen layout of the byte viewer.
//
// A Geometry is built once from three configuration values (bytes per
// group, groups per row and visible rows) and never changes afterwards.
// Everything else in the layout is derived from those values:
//
//	OOOOOOOO: XX XX XX XX  XX XX XX XX  |cccccccc|
//	^ header  ^ hex block (groups)      ^ separator + character panel
//
// All column offsets are zero-based screen columns.
package geometry

import (
	"errors"
	"fmt"

	"github.com/dshills/hexstorm/internal/engine/panel"
)

// Layout constants shared by every geometry.
const (
	// OffsetDigits is the number of hex digits in a row's offset label.
	OffsetDigits = 8

	// HeaderWidth is the width of the "%08X: " row prefix.
	HeaderWidth = OffsetDigits + 2

	// SeparatorWidth is the width of the frame bar left of the character panel.
	SeparatorWidth = 1

	// FirstDataRow is the screen row of the first window row.
	// Row 0 holds the column header and row 1 is blank.
	FirstDataRow = 2

	// hexCellWidth is the width of one "XX " hex pair.
	hexCellWidth = 3
)

// ErrInvalidConfiguration is returned when a geometry parameter is zero.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Geometry holds the layout parameters and their derived values.
// The zero value is not usable; construct with New.
type Geometry struct {
	bytesPerGroup uint16
	groupsPerRow  uint16
	rows          uint16
}

// New validates the parameters and returns a Geometry.
// A zero value for any parameter fails with ErrInvalidConfiguration.
func New(bytesPerGroup, groupsPerRow, rows uint16) (Geometry, error) {
	switch {
	case bytesPerGroup == 0:
		return Geometry{}, fmt.Errorf("%w: bytes per group must be greater than zero", ErrInvalidConfiguration)
	case groupsPerRow == 0:
		return Geometry{}, fmt.Errorf("%w: groups per row must be greater than zero", ErrInvalidConfiguration)
	case rows == 0:
		return Geometry{}, fmt.Errorf("%w: rows must be greater than zero", ErrInvalidConfiguration)
	}
	return Geometry{
		bytesPerGroup: bytesPerGroup,
		groupsPerRow:  groupsPerRow,
		rows:          rows,
	}, nil
}

// BytesPerGroup returns the number of bytes in one visual group.
func (g Geometry) BytesPerGroup() int { return int(g.bytesPerGroup) }

// GroupsPerRow returns the number of groups in one row.
func (g Geometry) GroupsPerRow() int { return int(g.groupsPerRow) }

// Rows returns the number of visible window rows.
func (g Geometry) Rows() int { return int(g.rows) }

// BytesPerRow returns the number of file bytes covered by one row.
func (g Geometry) BytesPerRow() int {
	return int(g.bytesPerGroup) * int(g.groupsPerRow)
}

// WindowBytes returns the capacity of the window in bytes.
// It is always a whole multiple of BytesPerRow.
func (g Geometry) WindowBytes() int {
	return g.BytesPerRow() * int(g.rows)
}

// groupWidth is the width of one group including its trailing gap.
func (g Geometry) groupWidth() int {
	return int(g.bytesPerGroup)*hexCellWidth + 1
}

// HexColumnOffset returns the screen column of the first digit of the hex
// pair for byteInGroup within group.
func (g Geometry) HexColumnOffset(group, byteInGroup int) int {
	return HeaderWidth + group*g.groupWidth() + byteInGroup*hexCellWidth
}

// HexBlockWidth returns the column just past the hex block, counted from
// the left edge of the screen.
func (g Geometry) HexBlockWidth() int {
	return HeaderWidth + int(g.groupsPerRow)*g.groupWidth()
}

// AsciiColumnOffset returns the screen column of byteIndex in the
// character panel.
func (g Geometry) AsciiColumnOffset(byteIndex int) int {
	return g.HexBlockWidth() + SeparatorWidth + byteIndex
}

// ScreenWidth returns the number of columns needed to draw a full row,
// including the closing frame bar.
func (g Geometry) ScreenWidth() int {
	return g.AsciiColumnOffset(g.BytesPerRow()) + SeparatorWidth
}

// ScreenRow returns the screen row of window row r.
func (g Geometry) ScreenRow(r int) int {
	return FirstDataRow + r
}

// PanelWidth returns the number of navigable columns in a panel.
// Both panels have one column per byte of a row.
func (g Geometry) PanelWidth(kind panel.Kind) int {
	switch kind {
	case panel.Hex, panel.Ascii:
		return g.BytesPerRow()
	default:
		return 0
	}
}

// PanelColumnOffset returns the screen column of the byte at index within
// a row, as drawn in the given panel.
func (g Geometry) PanelColumnOffset(kind panel.Kind, index int) int {
	switch kind {
	case panel.Hex:
		bpg := int(g.bytesPerGroup)
		return g.HexColumnOffset(index/bpg, index%bpg)
	case panel.Ascii:
		return g.AsciiColumnOffset(index)
	default:
		return 0
	}
}

// RowOffset returns the absolute file offset of displayed row i when the
// window starts at originRow.
func (g Geometry) RowOffset(originRow uint64, i int) uint64 {
	return (originRow + uint64(i)) * uint64(g.BytesPerRow())
}

// String implements fmt.Stringer.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d bytes, %d rows", g.groupsPerRow, g.bytesPerGroup, g.rows)
}

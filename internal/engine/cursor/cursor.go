package cursor

import "fmt"

// Movement is the outcome of a single-step move.
type Movement uint8

const (
	// Moved means the cursor changed position.
	Moved Movement = iota
	// StuckLeft means the cursor is already in column 0.
	StuckLeft
	// StuckRight means the cursor is already in the last column.
	StuckRight
	// StuckTop means the cursor is already in row 0.
	StuckTop
	// StuckBottom means the cursor is already in the last row.
	StuckBottom
)

// String returns the movement name.
func (m Movement) String() string {
	switch m {
	case Moved:
		return "moved"
	case StuckLeft:
		return "stuck-left"
	case StuckRight:
		return "stuck-right"
	case StuckTop:
		return "stuck-top"
	case StuckBottom:
		return "stuck-bottom"
	default:
		return "unknown"
	}
}

// Stuck reports whether the move was refused at an edge.
func (m Movement) Stuck() bool {
	return m != Moved
}

// Horizontal reports whether the move was refused at the left or right edge.
func (m Movement) Horizontal() bool {
	return m == StuckLeft || m == StuckRight
}

// Vertical reports whether the move was refused at the top or bottom edge.
func (m Movement) Vertical() bool {
	return m == StuckTop || m == StuckBottom
}

// Cursor is a (column, row) position inside a width x height panel.
// Both coordinates are always inside the bounds.
type Cursor struct {
	col, row      int
	width, height int
}

// New creates a cursor at (0, 0) bounded by width columns and height rows.
// Bounds below one are raised to one.
func New(width, height int) *Cursor {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Cursor{width: width, height: height}
}

// Column returns the cursor column.
func (c *Cursor) Column() int { return c.col }

// Row returns the cursor row.
func (c *Cursor) Row() int { return c.row }

// Width returns the number of columns.
func (c *Cursor) Width() int { return c.width }

// Height returns the number of rows.
func (c *Cursor) Height() int { return c.height }

// LastColumn returns the rightmost valid column.
func (c *Cursor) LastColumn() int { return c.width - 1 }

// LastRow returns the bottom valid row.
func (c *Cursor) LastRow() int { return c.height - 1 }

// MoveLeft moves one column left, or returns StuckLeft at column 0.
func (c *Cursor) MoveLeft() Movement {
	if c.col == 0 {
		return StuckLeft
	}
	c.col--
	return Moved
}

// MoveRight moves one column right, or returns StuckRight at the last column.
func (c *Cursor) MoveRight() Movement {
	if c.col == c.LastColumn() {
		return StuckRight
	}
	c.col++
	return Moved
}

// MoveUp moves one row up, or returns StuckTop at row 0.
func (c *Cursor) MoveUp() Movement {
	if c.row == 0 {
		return StuckTop
	}
	c.row--
	return Moved
}

// MoveDown moves one row down, or returns StuckBottom at the last row.
func (c *Cursor) MoveDown() Movement {
	if c.row == c.LastRow() {
		return StuckBottom
	}
	c.row++
	return Moved
}

// SetColumn positions the cursor at column col, clamped to the bounds.
func (c *Cursor) SetColumn(col int) {
	c.col = clamp(col, c.LastColumn())
}

// SetRow positions the cursor at row row, clamped to the bounds.
func (c *Cursor) SetRow(row int) {
	c.row = clamp(row, c.LastRow())
}

// Reset returns the cursor to (0, 0).
func (c *Cursor) Reset() {
	c.col, c.row = 0, 0
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d, %d)", c.col, c.row)
}

func clamp(v, upper int) int {
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}

// Package cursor provides the bounded two-dimensional cursor used inside a
// viewer panel.
//
// A Cursor holds a column and a row inside a fixed width x height grid.
// Single-step moves never leave the grid: a move that would cross an edge
// leaves the cursor where it is and reports which edge stopped it.
//
//	c := cursor.New(16, 10)
//	c.MoveRight()            // Moved, now (1, 0)
//	c.MoveUp()               // StuckTop, still (1, 0)
//
// Callers use the reported edge to decide what happens next. A horizontal
// edge usually hands focus to the neighbouring panel; a vertical edge
// scrolls the window under the cursor.
//
// Cursor is not safe for concurrent use.
package cursor

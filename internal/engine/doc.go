// Package engine is the byte viewer core: a Session that keeps a
// row-aligned window over a file in step with a two-panel cursor.
//
// # Architecture
//
// The session is built on several sub-packages:
//
//   - geometry: fixed layout parameters and screen column arithmetic
//   - window: the scrollable, row-aligned byte window over the file
//   - cursor: a bounded (column, row) position inside one panel
//   - panel: the active panel and cross-panel edge transitions
//
// A Session applies one Action at a time. Horizontal moves that run into a
// panel edge hand focus to the other panel; vertical moves that run into
// the top or bottom row scroll the window instead. After each action the
// caller takes a Snapshot, which is everything a renderer needs to draw
// the screen.
//
// # Basic Usage
//
//	g, err := geometry.New(8, 2, 10)
//	if err != nil {
//		return err // ErrInvalidConfiguration
//	}
//
//	s, err := engine.Open("dump.bin", g)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	_ = s.Apply(engine.ActionDown)
//	snap := s.Snapshot()
//	fmt.Printf("%08X\n", snap.RowOffset(0))
//
// # Errors
//
// Geometry problems surface as ErrInvalidConfiguration before a session
// exists. Scrolling can fail with ErrInvalidMovement or an *IOError from the
// underlying file. ActionQuit returns ErrQuit. None of these are retried.
//
// # Thread Safety
//
// A Session is owned by a single goroutine and is not safe for concurrent
// use. The byte slice in a Snapshot is only valid until the next Apply.
package engine

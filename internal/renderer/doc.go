// Package renderer provides the display layer for the hexstorm viewer.
//
// The renderer turns an engine.Snapshot into terminal cells:
//   - an offset header row followed by a blank row
//   - one data row per window row: "%08X: " offset, grouped "%02X " pairs
//     and a framed character column
//   - a status line on the last terminal row
//   - the terminal cursor on the focused byte of the active panel
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Geometry (columns) │ Theme (styles)    │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ Termbox │ Null      │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.New("tcell")
//	_ = b.Init()
//	r := renderer.New(b, session.Geometry(), renderer.DefaultOptions())
//	r.Render(session.Name(), session.Snapshot())
package renderer

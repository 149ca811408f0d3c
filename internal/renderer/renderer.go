package renderer

import (
	"fmt"
	"strings"

	"github.com/dshills/hexstorm/internal/engine"
	"github.com/dshills/hexstorm/internal/engine/geometry"
	"github.com/dshills/hexstorm/internal/renderer/backend"
	"github.com/dshills/hexstorm/internal/renderer/core"
)

// statusRows is the number of rows reserved below the data rows.
const statusRows = 1

// Options configures the renderer.
type Options struct {
	// Placeholder replaces bytes outside printable ASCII in the text column.
	Placeholder rune

	// ShowStatus draws the status line on the last terminal row.
	ShowStatus bool

	// HighlightTwin marks the byte under the cursor in the inactive panel.
	HighlightTwin bool

	Theme Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Placeholder:   '.',
		ShowStatus:    true,
		HighlightTwin: true,
		Theme:         DefaultTheme(),
	}
}

// Renderer draws snapshots onto a backend.
type Renderer struct {
	opts    Options
	backend backend.Backend
	geom    geometry.Geometry
	frames  uint64
}

// New creates a new renderer with the given backend, layout and options.
func New(b backend.Backend, g geometry.Geometry, opts Options) *Renderer {
	if opts.Placeholder == 0 {
		opts.Placeholder = '.'
	}
	return &Renderer{
		opts:    opts,
		backend: b,
		geom:    g,
	}
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetOptions replaces the options used for the next frame.
func (r *Renderer) SetOptions(opts Options) {
	if opts.Placeholder == 0 {
		opts.Placeholder = '.'
	}
	r.opts = opts
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// MinSize returns the smallest terminal that fits the layout.
func (r *Renderer) MinSize() (width, height int) {
	height = geometry.FirstDataRow + r.geom.Rows()
	if r.opts.ShowStatus {
		height += statusRows
	}
	return r.geom.ScreenWidth(), height
}

// Fits reports whether a terminal of the given size fits the layout.
func (r *Renderer) Fits(width, height int) bool {
	w, h := r.MinSize()
	return width >= w && height >= h
}

// Render draws one full frame for the named file and shows it.
func (r *Renderer) Render(name string, snap engine.Snapshot) {
	r.backend.Clear()
	r.frames++

	width, height := r.backend.Size()
	if !r.Fits(width, height) {
		r.renderTooSmall(width, height)
		r.backend.HideCursor()
		r.backend.Show()
		return
	}

	r.renderHeader()
	for i := 0; i < snap.Rows; i++ {
		r.renderRow(snap, i)
	}
	if r.opts.HighlightTwin {
		r.renderTwin(snap)
	}
	if r.opts.ShowStatus {
		r.renderStatus(name, snap, width, height-1)
	}
	r.placeCursor(snap)
	r.backend.Show()
}

func (r *Renderer) renderHeader() {
	theme := r.opts.Theme
	bpg := r.geom.BytesPerGroup()
	for g := 0; g < r.geom.GroupsPerRow(); g++ {
		for b := 0; b < bpg; b++ {
			r.drawString(r.geom.HexColumnOffset(g, b), 0, fmt.Sprintf("%02X", g*bpg+b), theme.Header)
		}
	}
	r.drawString(r.geom.AsciiColumnOffset(0), 0, "ASCII", theme.Header)
}

// renderRow draws screen row i. Rows past the end of the file stay blank.
func (r *Renderer) renderRow(snap engine.Snapshot, i int) {
	data := snap.Row(i)
	if len(data) == 0 {
		return
	}

	theme := r.opts.Theme
	y := r.geom.ScreenRow(i)
	bpg := r.geom.BytesPerGroup()

	r.drawString(0, y, fmt.Sprintf("%0*X: ", geometry.OffsetDigits, snap.RowOffset(i)), theme.Offset)

	for idx, b := range data {
		r.drawString(r.geom.HexColumnOffset(idx/bpg, idx%bpg), y, fmt.Sprintf("%02X", b), theme.Hex)
		r.backend.SetCell(r.geom.AsciiColumnOffset(idx), y, r.textCell(b))
	}

	r.backend.SetCell(r.geom.HexBlockWidth(), y, core.NewStyledCell('|', theme.Frame))
	r.backend.SetCell(r.geom.AsciiColumnOffset(len(data)), y, core.NewStyledCell('|', theme.Frame))
}

// textCell returns the text column cell for b.
func (r *Renderer) textCell(b byte) core.Cell {
	theme := r.opts.Theme
	switch {
	case b == '\n':
		return core.NewStyledCell(' ', theme.Newline)
	case b < 0x20 || b > 0x7E:
		return core.NewStyledCell(r.opts.Placeholder, theme.Placeholder)
	default:
		return core.NewStyledCell(rune(b), theme.Text)
	}
}

// renderTwin marks the cells of the cursor byte in the inactive panel.
func (r *Renderer) renderTwin(snap engine.Snapshot) {
	if _, ok := snap.CursorByte(); !ok {
		return
	}
	other := snap.ActivePanel.Other()
	y := r.geom.ScreenRow(snap.CursorRow)
	x := r.geom.PanelColumnOffset(other, snap.CursorColumn)
	width := 1
	if other == engine.PanelHex {
		width = 2
	}
	for dx := 0; dx < width; dx++ {
		c := r.backend.GetCell(x+dx, y)
		c.Style = c.Style.Merge(r.opts.Theme.Twin)
		r.backend.SetCell(x+dx, y, c)
	}
}

func (r *Renderer) renderStatus(name string, snap engine.Snapshot, width, y int) {
	var sb strings.Builder
	fmt.Fprintf(&sb, " %s | %s", name, strings.ToUpper(snap.ActivePanel.String()))

	if off, ok := snap.CursorOffset(); ok {
		b, _ := snap.CursorByte()
		fmt.Fprintf(&sb, " | 0x%0*X = %02X", geometry.OffsetDigits, off, b)
	} else {
		sb.WriteString(" | EOF")
	}

	row := uint64(0)
	if snap.BytesPerRow > 0 {
		row = snap.CurrentRowOffset / uint64(snap.BytesPerRow)
	}
	fmt.Fprintf(&sb, " | row %d/%d ", row, snap.TotalRows())

	line := core.Truncate(sb.String(), width, "~")
	style := r.opts.Theme.Status
	x := r.drawString(0, y, line, style)
	for ; x < width; x++ {
		r.backend.SetCell(x, y, core.NewStyledCell(' ', style))
	}
}

func (r *Renderer) renderTooSmall(width, height int) {
	w, h := r.MinSize()
	msg := fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", w, h, width, height)
	r.drawString(0, 0, core.Truncate(msg, width, "~"), r.opts.Theme.Message)
}

// placeCursor shows the terminal cursor on the focused byte, or hides it
// when the cursor is past the end of the file.
func (r *Renderer) placeCursor(snap engine.Snapshot) {
	if _, ok := snap.CursorByte(); !ok {
		r.backend.HideCursor()
		return
	}
	x := r.geom.PanelColumnOffset(snap.ActivePanel, snap.CursorColumn)
	r.backend.ShowCursor(x, r.geom.ScreenRow(snap.CursorRow))
}

// drawString draws s starting at column x and returns the column after it.
func (r *Renderer) drawString(x, y int, s string, style core.Style) int {
	for _, ch := range s {
		cell := core.NewStyledCell(ch, style)
		r.backend.SetCell(x, y, cell)
		if cell.Width > 1 {
			x += cell.Width
		} else {
			x++
		}
	}
	return x
}

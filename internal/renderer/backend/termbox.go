package backend

import (
	"sync"

	"github.com/nsf/termbox-go"

	"github.com/dshills/hexstorm/internal/renderer/core"
)

const termboxAttrMask = termbox.AttrBold | termbox.AttrUnderline | termbox.AttrReverse

// Termbox implements Backend on top of termbox-go. termbox has no event
// injection, so posted events are queued here and delivered by interrupting
// the blocking poll.
type Termbox struct {
	mu      sync.Mutex
	pending chan Event
}

// NewTermbox creates a termbox backend. Init must be called before use.
func NewTermbox() *Termbox {
	return &Termbox{pending: make(chan Event, 16)}
}

func (t *Termbox) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return nil
}

func (t *Termbox) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	termbox.Close()
}

func (t *Termbox) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return termbox.Size()
}

func (t *Termbox) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fg, bg := termboxStyle(cell.Style)
	termbox.SetCell(x, y, cell.Rune, fg, bg)
}

func (t *Termbox) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := termbox.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return core.EmptyCell()
	}
	buf := termbox.CellBuffer()
	if y*w+x >= len(buf) {
		return core.EmptyCell()
	}
	c := buf[y*w+x]
	return core.Cell{
		Rune:  c.Ch,
		Width: core.RuneWidth(c.Ch),
		Style: styleFromTermbox(c.Fg, c.Bg),
	}
}

func (t *Termbox) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *Termbox) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = termbox.Flush()
}

func (t *Termbox) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	termbox.SetCursor(x, y)
}

func (t *Termbox) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	termbox.HideCursor()
}

func (t *Termbox) PollEvent() Event {
	for {
		select {
		case ev := <-t.pending:
			return ev
		default:
		}

		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			select {
			case posted := <-t.pending:
				return posted
			default:
				continue
			}
		}
		if ev.Type == termbox.EventResize {
			_ = termbox.Sync()
		}
		return convertTermboxEvent(ev)
	}
}

func (t *Termbox) PostEvent(event Event) {
	select {
	case t.pending <- event:
		termbox.Interrupt()
	default:
		// Event dropped if queue is full
	}
}

// termboxStyle converts our Style to termbox foreground and background
// attributes in 256-color output mode.
func termboxStyle(s core.Style) (fg, bg termbox.Attribute) {
	fg = termboxColor(s.Foreground)
	bg = termboxColor(s.Background)

	if s.Attributes.Has(core.AttrBold) {
		fg |= termbox.AttrBold
	}
	if s.Attributes.Has(core.AttrUnderline) {
		fg |= termbox.AttrUnderline
	}
	if s.Attributes.Has(core.AttrReverse) {
		fg |= termbox.AttrReverse
	}
	return fg, bg
}

// termboxColor maps a color to a 256-color palette attribute. True colors
// are approximated by the 6x6x6 color cube.
func termboxColor(c core.Color) termbox.Attribute {
	switch {
	case c.IsDefault():
		return termbox.ColorDefault
	case c.Indexed:
		return termbox.Attribute(c.R) + 1
	default:
		idx := 16 + 36*cubeLevel(c.R) + 6*cubeLevel(c.G) + cubeLevel(c.B)
		return termbox.Attribute(idx) + 1
	}
}

func cubeLevel(v uint8) int {
	return (int(v)*5 + 127) / 255
}

func styleFromTermbox(fg, bg termbox.Attribute) core.Style {
	s := core.Style{
		Foreground: colorFromTermbox(fg &^ termboxAttrMask),
		Background: colorFromTermbox(bg &^ termboxAttrMask),
	}
	if fg&termbox.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if fg&termbox.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if fg&termbox.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}
	return s
}

func colorFromTermbox(a termbox.Attribute) core.Color {
	if a == termbox.ColorDefault {
		return core.ColorDefault
	}
	return core.ColorFromIndex(uint8(a - 1))
}

func convertTermboxEvent(ev termbox.Event) Event {
	switch ev.Type {
	case termbox.EventKey:
		var mod ModMask
		if ev.Mod&termbox.ModAlt != 0 {
			mod |= ModAlt
		}
		key, r := convertTermboxKey(ev.Key, ev.Ch)
		return Event{Type: EventKey, Key: key, Rune: r, Mod: mod}
	case termbox.EventResize:
		return Event{Type: EventResize, Width: ev.Width, Height: ev.Height}
	case termbox.EventMouse:
		return Event{Type: EventMouse}
	case termbox.EventError:
		return Event{Type: EventError, Err: ev.Err}
	default:
		return Event{Type: EventNone}
	}
}

// convertTermboxKey converts a termbox key and character to our Key type.
func convertTermboxKey(k termbox.Key, ch rune) (Key, rune) {
	if ch != 0 {
		return KeyRune, ch
	}
	switch k {
	case termbox.KeySpace:
		return KeyRune, ' '
	case termbox.KeyEsc:
		return KeyEscape, 0
	case termbox.KeyEnter:
		return KeyEnter, 0
	case termbox.KeyTab:
		return KeyTab, 0
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return KeyBackspace, 0
	case termbox.KeyDelete:
		return KeyDelete, 0
	case termbox.KeyHome:
		return KeyHome, 0
	case termbox.KeyEnd:
		return KeyEnd, 0
	case termbox.KeyPgup:
		return KeyPageUp, 0
	case termbox.KeyPgdn:
		return KeyPageDown, 0
	case termbox.KeyArrowUp:
		return KeyUp, 0
	case termbox.KeyArrowDown:
		return KeyDown, 0
	case termbox.KeyArrowLeft:
		return KeyLeft, 0
	case termbox.KeyArrowRight:
		return KeyRight, 0
	}
	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return KeyCtrlA + Key(k-termbox.KeyCtrlA), 0
	}
	return KeyNone, 0
}

// Package window keeps a row-aligned, fixed-capacity window of bytes over a
// seekable source.
//
// The window origin is always a multiple of the row width, so every row in
// the buffer starts on a row boundary. Only the final window of a source may
// end with a short row. Scrolling clamps at both ends instead of failing:
// the origin never goes below zero and never moves past the row that holds
// the last byte of the source.
//
// A Reader assumes the source does not change size while it is open.
// It is not safe for concurrent use.
package window

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"

	"github.com/dshills/hexstorm/internal/engine/geometry"
)

// Direction is the direction of a scroll.
type Direction uint8

const (
	// Down moves the window toward the end of the source.
	Down Direction = iota
	// Up moves the window toward the start of the source.
	Up
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Reader is a scrollable window over a byte source.
type Reader struct {
	src    io.ReadSeeker
	closer io.Closer

	size        uint64
	bytesPerRow uint64

	buf    []byte
	n      int
	origin uint64
}

// Open positions a window at offset 0 of src and fills it with up to
// g.WindowBytes() bytes. The size of src is taken once, here.
func Open(src io.ReadSeeker, g geometry.Geometry) (*Reader, error) {
	if g.BytesPerRow() <= 0 {
		return nil, fmt.Errorf("%w: zero row width", geometry.ErrInvalidConfiguration)
	}

	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &IOError{Op: "size", Err: err}
	}

	// No point holding more than the whole source in memory.
	capacity := uint64(g.WindowBytes())
	if uint64(end) < capacity {
		capacity = uint64(end)
	}

	r := &Reader{
		src:         src,
		size:        uint64(end),
		bytesPerRow: uint64(g.BytesPerRow()),
		buf:         make([]byte, capacity),
	}
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}

	if err := r.fill(0); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenFile opens the file at path read-only and wraps it in a Reader.
// The Reader owns the file; call Close to release it.
func OpenFile(path string, g geometry.Geometry) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := Open(f, g)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the underlying source if it is closable.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Buffer returns the bytes currently in the window.
// The slice is only valid until the next scroll.
func (r *Reader) Buffer() []byte {
	return r.buf[:r.n]
}

// Origin returns the source offset of the first byte in the window.
func (r *Reader) Origin() uint64 {
	return r.origin
}

// CurrentOriginRow returns the row index of the first window row.
func (r *Reader) CurrentOriginRow() uint64 {
	return r.origin / r.bytesPerRow
}

// Size returns the size of the source in bytes.
func (r *Reader) Size() uint64 {
	return r.size
}

// RowCount returns the number of rows needed to show the whole source.
func (r *Reader) RowCount() uint64 {
	if r.size == 0 {
		return 0
	}
	return (r.size-1)/r.bytesPerRow + 1
}

// LastOriginRow returns the largest row index the window may start at:
// the row holding the last byte of the source.
func (r *Reader) LastOriginRow() uint64 {
	return r.lastOrigin() / r.bytesPerRow
}

func (r *Reader) lastOrigin() uint64 {
	if r.size == 0 {
		return 0
	}
	return (r.size - 1) / r.bytesPerRow * r.bytesPerRow
}

// Scroll moves the window by rows whole rows in dir and refills it.
// Moves past either end of the source clamp to that end.
// A row count whose byte distance does not fit a file offset fails with
// ErrInvalidMovement; seek and read failures are returned as *IOError.
func (r *Reader) Scroll(rows uint64, dir Direction) error {
	if rows == 0 {
		return nil
	}

	hi, delta := bits.Mul64(rows, r.bytesPerRow)
	if hi != 0 || delta > math.MaxInt64 {
		return fmt.Errorf("%w: %d rows of %d bytes overflows a file offset", ErrInvalidMovement, rows, r.bytesPerRow)
	}

	var target uint64
	switch dir {
	case Down:
		last := r.lastOrigin()
		if delta >= last-r.origin {
			target = last
		} else {
			target = r.origin + delta
		}
	case Up:
		if delta >= r.origin {
			target = 0
		} else {
			target = r.origin - delta
		}
	default:
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidMovement, dir)
	}

	if target == r.origin {
		return nil
	}
	return r.fill(target)
}

// ScrollDown is Scroll(rows, Down).
func (r *Reader) ScrollDown(rows uint64) error {
	return r.Scroll(rows, Down)
}

// ScrollUp is Scroll(rows, Up).
func (r *Reader) ScrollUp(rows uint64) error {
	return r.Scroll(rows, Up)
}

// fill reads the window starting at origin. origin must be row aligned and
// no greater than lastOrigin.
func (r *Reader) fill(origin uint64) error {
	if _, err := r.src.Seek(int64(origin), io.SeekStart); err != nil {
		return &IOError{Op: "seek", Offset: origin, Err: err}
	}

	n, err := io.ReadFull(r.src, r.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return &IOError{Op: "read", Offset: origin, Err: err}
	}

	r.origin = origin
	r.n = n
	return nil
}

package window

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/hexstorm/internal/engine/geometry"
)

func testGeometry(t *testing.T, bpg, gpr, rows uint16) geometry.Geometry {
	t.Helper()
	g, err := geometry.New(bpg, gpr, rows)
	if err != nil {
		t.Fatalf("geometry.New failed: %v", err)
	}
	return g
}

// sequence returns n bytes where byte i holds i mod 256.
func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func openBytes(t *testing.T, data []byte, g geometry.Geometry) *Reader {
	t.Helper()
	r, err := Open(bytes.NewReader(data), g)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return r
}

func checkWindow(t *testing.T, r *Reader, data []byte, origin uint64, length int) {
	t.Helper()
	if r.Origin() != origin {
		t.Fatalf("expected origin %d, got %d", origin, r.Origin())
	}
	buf := r.Buffer()
	if len(buf) != length {
		t.Fatalf("expected %d buffered bytes, got %d", length, len(buf))
	}
	if !bytes.Equal(buf, data[origin:origin+uint64(length)]) {
		t.Errorf("buffer does not match source at origin %d", origin)
	}
}

func TestOpenFillsFirstWindow(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	data := sequence(200)
	r := openBytes(t, data, g)

	checkWindow(t, r, data, 0, 160)
	if r.CurrentOriginRow() != 0 {
		t.Errorf("expected origin row 0, got %d", r.CurrentOriginRow())
	}
	if r.Size() != 200 {
		t.Errorf("expected size 200, got %d", r.Size())
	}
	if r.RowCount() != 13 {
		t.Errorf("expected 13 rows, got %d", r.RowCount())
	}
	if r.LastOriginRow() != 12 {
		t.Errorf("expected last origin row 12, got %d", r.LastOriginRow())
	}
}

func TestScrollScenario(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	data := sequence(200)
	r := openBytes(t, data, g)

	if err := r.Scroll(1, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 16, 160)
	if r.CurrentOriginRow() != 1 {
		t.Errorf("expected origin row 1, got %d", r.CurrentOriginRow())
	}

	if err := r.Scroll(1, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 32, 160)

	// From here on the window runs into the end of the file.
	if err := r.Scroll(1, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 48, 152)
}

func TestScrollDownClampsToLastRow(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	data := sequence(200)
	r := openBytes(t, data, g)

	if err := r.Scroll(1000, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	// Last byte is 199, which lives in the row starting at 192.
	checkWindow(t, r, data, 192, 8)

	if err := r.Scroll(1, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 192, 8)
}

func TestScrollDownExactRowMultiple(t *testing.T) {
	g := testGeometry(t, 4, 1, 2)
	data := sequence(16)
	r := openBytes(t, data, g)

	if err := r.Scroll(10, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 12, 4)
}

func TestScrollUpClampsAtZero(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	data := sequence(1000)
	r := openBytes(t, data, g)

	if err := r.Scroll(5, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if err := r.Scroll(3, Up); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 32, 160)

	for i := 0; i < 5; i++ {
		if err := r.Scroll(1, Up); err != nil {
			t.Fatalf("Scroll failed: %v", err)
		}
	}
	checkWindow(t, r, data, 0, 160)

	if err := r.Scroll(math.MaxInt64/16, Up); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 0, 160)
}

func TestScrollDownUpRoundTrip(t *testing.T) {
	g := testGeometry(t, 3, 5, 4)
	data := sequence(997)
	r := openBytes(t, data, g)

	for row := uint64(0); row < r.LastOriginRow(); row++ {
		before := r.Origin()
		if err := r.Scroll(1, Down); err != nil {
			t.Fatalf("Scroll down failed: %v", err)
		}
		if err := r.Scroll(1, Up); err != nil {
			t.Fatalf("Scroll up failed: %v", err)
		}
		if r.Origin() != before {
			t.Fatalf("row %d: round trip moved origin from %d to %d", row, before, r.Origin())
		}
		if err := r.Scroll(1, Down); err != nil {
			t.Fatalf("Scroll failed: %v", err)
		}
	}
}

func TestOriginStaysAligned(t *testing.T) {
	g := testGeometry(t, 3, 3, 3)
	data := sequence(500)
	r := openBytes(t, data, g)

	steps := []struct {
		rows uint64
		dir  Direction
	}{
		{1, Down}, {7, Down}, {2, Up}, {100, Down}, {3, Up}, {1000, Up}, {13, Down},
	}
	for _, s := range steps {
		if err := r.Scroll(s.rows, s.dir); err != nil {
			t.Fatalf("Scroll(%d, %v) failed: %v", s.rows, s.dir, err)
		}
		if r.Origin()%9 != 0 {
			t.Fatalf("origin %d not row aligned", r.Origin())
		}
		if r.Origin() > 495 {
			t.Fatalf("origin %d past last row boundary", r.Origin())
		}
		n := len(r.Buffer())
		if n > g.WindowBytes() {
			t.Fatalf("buffer length %d exceeds window", n)
		}
		if r.Origin()+uint64(n) < r.Size() && n%9 != 0 {
			t.Fatalf("non-final window has partial row (%d bytes)", n)
		}
	}
}

func TestScrollZeroRowsIsNoop(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	data := sequence(400)
	r := openBytes(t, data, g)

	if err := r.Scroll(2, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if err := r.Scroll(0, Up); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	checkWindow(t, r, data, 32, 160)
}

func TestScrollOverflow(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	r := openBytes(t, sequence(100), g)

	tests := []uint64{math.MaxUint64, math.MaxInt64/16 + 1}
	for _, rows := range tests {
		for _, dir := range []Direction{Down, Up} {
			err := r.Scroll(rows, dir)
			if !errors.Is(err, ErrInvalidMovement) {
				t.Errorf("Scroll(%d, %v): expected ErrInvalidMovement, got %v", rows, dir, err)
			}
		}
	}
	if r.Origin() != 0 {
		t.Errorf("failed scroll must not move the window, origin %d", r.Origin())
	}
}

func TestEmptySource(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	r := openBytes(t, nil, g)

	if len(r.Buffer()) != 0 {
		t.Errorf("expected empty buffer, got %d bytes", len(r.Buffer()))
	}
	if r.RowCount() != 0 {
		t.Errorf("expected 0 rows, got %d", r.RowCount())
	}
	if err := r.Scroll(1, Down); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if r.Origin() != 0 {
		t.Errorf("expected origin 0, got %d", r.Origin())
	}
}

// faultySource fails reads or seeks once armed.
type faultySource struct {
	*bytes.Reader
	failRead bool
	failSeek bool
}

var errDisk = errors.New("disk on fire")

func (f *faultySource) Read(p []byte) (int, error) {
	if f.failRead {
		return 0, errDisk
	}
	return f.Reader.Read(p)
}

func (f *faultySource) Seek(offset int64, whence int) (int64, error) {
	if f.failSeek {
		return 0, errDisk
	}
	return f.Reader.Seek(offset, whence)
}

func TestScrollIOErrors(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)

	src := &faultySource{Reader: bytes.NewReader(sequence(400))}
	r, err := Open(src, g)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	src.failRead = true
	err = r.Scroll(1, Down)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if ioErr.Op != "read" || ioErr.Offset != 16 {
		t.Errorf("unexpected IOError: %+v", ioErr)
	}
	if !errors.Is(err, errDisk) {
		t.Error("IOError should unwrap to the source error")
	}

	src.failRead = false
	src.failSeek = true
	err = r.Scroll(1, Down)
	if !errors.As(err, &ioErr) || ioErr.Op != "seek" {
		t.Errorf("expected seek IOError, got %v", err)
	}
}

func TestOpenSizeError(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	src := &faultySource{Reader: bytes.NewReader(sequence(10)), failSeek: true}

	_, err := Open(src, g)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "size" {
		t.Errorf("expected size IOError, got %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	data := sequence(300)
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := OpenFile(path, g)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	checkWindow(t, r, data, 0, 160)

	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestOpenFileMissing(t *testing.T) {
	g := testGeometry(t, 8, 2, 10)
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing"), g)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDirectionString(t *testing.T) {
	if Down.String() != "down" || Up.String() != "up" {
		t.Errorf("unexpected names %q %q", Down, Up)
	}
	if Direction(9).String() != "unknown" {
		t.Error("expected unknown for invalid direction")
	}
}

var _ io.ReadSeeker = (*faultySource)(nil)

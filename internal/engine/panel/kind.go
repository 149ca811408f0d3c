// Package panel tracks which of the two navigable views has focus and
// moves the cursor across them.
//
// The viewer shows the same window of bytes twice: once as hexadecimal
// pairs (Hex) and once as characters (Ascii). Exactly one panel is active
// at a time. The Coordinator owns one cursor per panel and turns edge
// conditions into either a panel switch (horizontal) or a window scroll
// (vertical).
package panel

// Kind identifies a panel.
type Kind uint8

const (
	// Hex is the hexadecimal byte-pair panel.
	Hex Kind = iota
	// Ascii is the character panel.
	Ascii
)

// kindCount is the number of panel kinds, used to size per-panel arrays.
const kindCount = 2

// String returns the panel name.
func (k Kind) String() string {
	switch k {
	case Hex:
		return "hex"
	case Ascii:
		return "ascii"
	default:
		return "unknown"
	}
}

// Other returns the panel that is not k.
func (k Kind) Other() Kind {
	if k == Hex {
		return Ascii
	}
	return Hex
}

// Valid reports whether k is a known panel kind.
func (k Kind) Valid() bool {
	return k == Hex || k == Ascii
}

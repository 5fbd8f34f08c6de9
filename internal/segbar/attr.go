package segbar

import "strings"

// Mask marks which Attr fields the caller supplied. Fields whose bit is
// clear take their default value.
type Mask uint32

const (
	MaskSegments      Mask = 1 << iota // Attr.Segments is set
	MaskPadding                        // Attr.Padding is set
	MaskSegmentWidth                   // Attr.SegmentWidth is set
	MaskSegmentHeight                  // Attr.SegmentHeight is set
	MaskX                              // Attr.X is set
	MaskY                              // Attr.Y is set
	MaskForeground                     // Attr.Foreground is set
	MaskBackground                     // Attr.Background is set

	// MaskAll covers every optional field
	MaskAll = MaskSegments | MaskPadding | MaskSegmentWidth | MaskSegmentHeight |
		MaskX | MaskY | MaskForeground | MaskBackground
)

// Defaults applied to fields whose mask bit is clear.
const (
	DefaultSegments      = 20
	DefaultPadding       = 2
	DefaultSegmentWidth  = 12
	DefaultSegmentHeight = 20

	DefaultForeground = "#3475aa"
	DefaultBackground = "#1a1a1a"
)

// MinSegmentSize is the smallest usable segment edge: 1 px outline and
// 1 px gap on each side, plus 1 px of fill.
const MinSegmentSize = 5

// borderSize is the outer frame's contribution to each overall dimension.
const borderSize = 2

var maskNames = []struct {
	bit  Mask
	name string
}{
	{MaskSegments, "segments"},
	{MaskPadding, "padding"},
	{MaskSegmentWidth, "segment-width"},
	{MaskSegmentHeight, "segment-height"},
	{MaskX, "x"},
	{MaskY, "y"},
	{MaskForeground, "fg"},
	{MaskBackground, "bg"},
}

// Has reports whether every bit in f is set in m.
func (m Mask) Has(f Mask) bool {
	return m&f == f
}

// String lists the set fields, e.g. "x|y".
func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, n := range maskNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if extra := m &^ MaskAll; extra != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// Attr is a sparse request for a bar's appearance. Only the fields named
// by the accompanying Mask are read.
type Attr struct {
	Segments      int // Number of segments
	Padding       int // Gap in pixels before each segment and around the frame
	SegmentWidth  int // Segment width in pixels
	SegmentHeight int // Segment height in pixels

	X int // Left edge in screen pixels
	Y int // Top edge in screen pixels

	Foreground string // Outline and fill color name
	Background string // Interior color name
}

func (a *Attr) segments(m Mask) int {
	if m.Has(MaskSegments) {
		return a.Segments
	}
	return DefaultSegments
}

func (a *Attr) padding(m Mask) int {
	if m.Has(MaskPadding) {
		return a.Padding
	}
	return DefaultPadding
}

func (a *Attr) segmentWidth(m Mask) int {
	if m.Has(MaskSegmentWidth) {
		return a.SegmentWidth
	}
	return DefaultSegmentWidth
}

func (a *Attr) segmentHeight(m Mask) int {
	if m.Has(MaskSegmentHeight) {
		return a.SegmentHeight
	}
	return DefaultSegmentHeight
}

func (a *Attr) foreground(m Mask) string {
	if m.Has(MaskForeground) {
		return a.Foreground
	}
	return DefaultForeground
}

func (a *Attr) background(m Mask) string {
	if m.Has(MaskBackground) {
		return a.Background
	}
	return DefaultBackground
}

package segbar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/segbar/internal/logging"
)

// Layout is a fully validated, default-merged bar geometry. All sizes are
// in pixels.
type Layout struct {
	Segments      int
	Padding       int
	SegmentWidth  int
	SegmentHeight int

	Width  int // Overall bar width including the frame
	Height int // Overall bar height including the frame

	X int
	Y int
}

// Bounds returns the bar's rectangle in screen coordinates.
func (l Layout) Bounds() Rect {
	return Rect{X: l.X, Y: l.Y, W: l.Width, H: l.Height}
}

// String returns a one-line summary of the layout
func (l Layout) String() string {
	return fmt.Sprintf("%d x %dx%d seg, pad %d, bar %s",
		l.Segments, l.SegmentWidth, l.SegmentHeight, l.Padding, l.Bounds())
}

// BarWidth returns the overall width of n segments of width w separated
// by padding p, including the 1 px frame on each side. ok is false when
// the result does not fit in an int.
func BarWidth(w, p, n int) (width int, ok bool) {
	segs, ok1 := mulInt(w, n)
	gaps, ok2 := mulInt(p, n+1)
	sum, ok3 := addInt(segs, gaps)
	width, ok4 := addInt(sum, borderSize)
	return width, ok1 && ok2 && ok3 && ok4
}

// BarHeight returns the overall height for segments of height h with
// padding p, including the frame.
func BarHeight(h, p int) (height int, ok bool) {
	pads, ok1 := mulInt(p, 2)
	sum, ok2 := addInt(h, pads)
	height, ok3 := addInt(sum, borderSize)
	return height, ok1 && ok2 && ok3
}

// Resolve merges attr with defaults according to mask, validates each
// field against a screen of screenW x screenH pixels and returns the
// derived layout. The first failing check is reported:
// segments, padding, segment width, segment height, x, y, then overall fit.
//
// A nil attr is valid only with an empty mask.
func Resolve(mask Mask, attr *Attr, screenW, screenH int) (*Layout, error) {
	if attr == nil && mask != 0 {
		return nil, badRef("attr")
	}

	l := &Layout{}

	l.Segments = attr.segments(mask)
	if l.Segments <= 0 {
		return nil, newError(StatusBadSegments, "segments", l.Segments)
	}

	l.Padding = attr.padding(mask)
	if l.Padding <= 0 {
		return nil, newError(StatusBadPadding, "padding", l.Padding)
	}

	l.SegmentWidth = attr.segmentWidth(mask)
	if l.SegmentWidth < MinSegmentSize {
		return nil, newError(StatusBadSegmentWidth, "segment-width", l.SegmentWidth)
	}

	l.SegmentHeight = attr.segmentHeight(mask)
	if l.SegmentHeight < MinSegmentSize {
		return nil, newError(StatusBadSegmentHeight, "segment-height", l.SegmentHeight)
	}

	var okW, okH bool
	l.Width, okW = BarWidth(l.SegmentWidth, l.Padding, l.Segments)
	l.Height, okH = BarHeight(l.SegmentHeight, l.Padding)

	// A defaulted position needs a size that fits in an int
	if mask.Has(MaskX) {
		l.X = attr.X
	} else if !okW {
		return nil, newError(StatusTooLarge, "width", l.Width)
	} else {
		l.X = screenW/2 - l.Width/2
	}
	if l.X < 0 || l.X > screenW {
		return nil, newError(StatusBadX, "x", l.X)
	}

	if mask.Has(MaskY) {
		l.Y = attr.Y
	} else if !okH {
		return nil, newError(StatusTooLarge, "height", l.Height)
	} else {
		l.Y = screenH*15/16 - l.Height/2
	}
	if l.Y < 0 || l.Y > screenH {
		return nil, newError(StatusBadY, "y", l.Y)
	}

	if !okW || l.X > screenW-l.Width {
		return nil, newError(StatusTooLarge, "width", l.Width)
	}
	if !okH || l.Y > screenH-l.Height {
		return nil, newError(StatusTooLarge, "height", l.Height)
	}

	logging.Debug("Layout resolved",
		zap.Stringer("mask", mask),
		zap.Stringer("layout", l),
		zap.Int("screen_width", screenW),
		zap.Int("screen_height", screenH),
	)

	return l, nil
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	return c, c/b == a
}

func addInt(a, b int) (int, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return c, false
	}
	return c, true
}

package segbar

// Percent maps a progress sample onto [0, 100]. current <= 0 is 0 and
// current >= max is 100; values in between interpolate linearly.
// max <= 0 has no meaningful fill and is reported as StatusBadRange.
func Percent(current, max int) (float64, error) {
	if max <= 0 {
		return 0, newError(StatusBadRange, "max", max)
	}
	switch {
	case current <= 0:
		return 0, nil
	case current >= max:
		return 100, nil
	default:
		return float64(current) / float64(max) * 100, nil
	}
}

// SegmentFill returns how much of segment i (of n) is filled when the bar
// as a whole is percent full. Segment i covers the percent window
// [i*100/n, (i+1)*100/n]: below the window it is empty, above it full,
// and inside it fills linearly.
func SegmentFill(percent float64, i, n int) float64 {
	step := 100 / float64(n)
	lower := float64(i) * step
	upper := float64(i+1) * step

	switch {
	case percent >= upper:
		return 1
	case percent <= lower:
		return 0
	default:
		return (percent - lower) / (upper - lower)
	}
}

// OpKind distinguishes outline from filled rectangles in a Plan.
type OpKind int

const (
	OpOutline OpKind = iota
	OpFill
)

func (k OpKind) String() string {
	if k == OpFill {
		return "fill"
	}
	return "outline"
}

// Op is one drawing primitive, in window coordinates.
type Op struct {
	Kind  OpKind
	Rect  Rect
	Color Color
}

// Plan computes the drawing operations for l at percent fill:
// the frame outline, the interior background, then an outline and a
// (possibly empty) fill per segment. The result depends only on its
// arguments.
func Plan(l Layout, fg, bg Color, percent float64) []Op {
	ops := make([]Op, 0, 2+2*l.Segments)

	ops = append(ops,
		Op{Kind: OpOutline, Rect: Rect{X: 0, Y: 0, W: l.Width, H: l.Height}, Color: fg},
		Op{Kind: OpFill, Rect: Rect{X: 1, Y: 1, W: l.Width - 2, H: l.Height - 2}, Color: bg},
	)

	innerW := l.SegmentWidth - 4
	innerH := l.SegmentHeight - 4

	x := 1 + l.Padding
	y := 1 + l.Padding
	for i := 0; i < l.Segments; i++ {
		fill := SegmentFill(percent, i, l.Segments)

		ops = append(ops,
			Op{Kind: OpOutline, Rect: Rect{X: x, Y: y, W: l.SegmentWidth, H: l.SegmentHeight}, Color: fg},
			Op{Kind: OpFill, Rect: Rect{X: x + 2, Y: y + 2, W: int(float64(innerW) * fill), H: innerH}, Color: fg},
		)

		x += l.SegmentWidth + l.Padding
	}

	return ops
}

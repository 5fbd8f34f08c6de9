package segbar

// RequestBuilder provides a fluent API for building a bar request.
// Every setter records its mask bit, so the mask can never name a field
// that was not supplied.
//
// Example usage:
//
//	mask, attr := segbar.NewRequest().
//	    SetSegments(10).
//	    SetPosition(30, 30).
//	    SetForeground("green").
//	    Build()
//	bar, err := segbar.Init(mask, attr, backend)
type RequestBuilder struct {
	mask Mask
	attr Attr
}

// NewRequest creates a builder with no fields set (all defaults).
func NewRequest() *RequestBuilder {
	return &RequestBuilder{}
}

// SetSegments sets the number of segments.
func (b *RequestBuilder) SetSegments(n int) *RequestBuilder {
	b.mask |= MaskSegments
	b.attr.Segments = n
	return b
}

// SetPadding sets the gap in pixels around and between segments.
func (b *RequestBuilder) SetPadding(px int) *RequestBuilder {
	b.mask |= MaskPadding
	b.attr.Padding = px
	return b
}

// SetSegmentWidth sets the width of one segment in pixels.
func (b *RequestBuilder) SetSegmentWidth(px int) *RequestBuilder {
	b.mask |= MaskSegmentWidth
	b.attr.SegmentWidth = px
	return b
}

// SetSegmentHeight sets the height of one segment in pixels.
func (b *RequestBuilder) SetSegmentHeight(px int) *RequestBuilder {
	b.mask |= MaskSegmentHeight
	b.attr.SegmentHeight = px
	return b
}

// SetSegmentSize sets both segment dimensions at once.
func (b *RequestBuilder) SetSegmentSize(width, height int) *RequestBuilder {
	return b.SetSegmentWidth(width).SetSegmentHeight(height)
}

// SetX sets the left edge of the bar in screen pixels.
func (b *RequestBuilder) SetX(x int) *RequestBuilder {
	b.mask |= MaskX
	b.attr.X = x
	return b
}

// SetY sets the top edge of the bar in screen pixels.
func (b *RequestBuilder) SetY(y int) *RequestBuilder {
	b.mask |= MaskY
	b.attr.Y = y
	return b
}

// SetPosition sets both coordinates of the top-left corner.
func (b *RequestBuilder) SetPosition(x, y int) *RequestBuilder {
	return b.SetX(x).SetY(y)
}

// SetForeground sets the outline and fill color.
func (b *RequestBuilder) SetForeground(name string) *RequestBuilder {
	b.mask |= MaskForeground
	b.attr.Foreground = name
	return b
}

// SetBackground sets the interior color.
func (b *RequestBuilder) SetBackground(name string) *RequestBuilder {
	b.mask |= MaskBackground
	b.attr.Background = name
	return b
}

// SetColors sets foreground and background at once.
func (b *RequestBuilder) SetColors(fg, bg string) *RequestBuilder {
	return b.SetForeground(fg).SetBackground(bg)
}

// HasChanges returns true if any field has been set.
func (b *RequestBuilder) HasChanges() bool {
	return b.mask != 0
}

// Mask returns the fields set so far.
func (b *RequestBuilder) Mask() Mask {
	return b.mask
}

// Build returns the mask and a copy of the request. Later calls on the
// builder do not affect the returned Attr.
func (b *RequestBuilder) Build() (Mask, *Attr) {
	attr := b.attr
	return b.mask, &attr
}

// Reset clears all fields back to defaults.
func (b *RequestBuilder) Reset() *RequestBuilder {
	b.mask = 0
	b.attr = Attr{}
	return b
}

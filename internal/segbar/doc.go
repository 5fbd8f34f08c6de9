// Package segbar draws segmented progress bars onto a pluggable backend.
//
// A bar is a row of equally sized segments inside a 1 px frame. Progress
// is shown by filling segments left to right: segments below the current
// percentage are full, the segment straddling it is partially filled and
// the rest are empty.
//
// # Requests
//
// Appearance is described by an Attr plus a Mask naming the fields the
// caller supplied; every other field takes its default (20 segments of
// 12x20 px with 2 px padding, centered near the bottom of the screen,
// colors #3475aa on #1a1a1a). The RequestBuilder keeps the two in step:
//
//	mask, attr := segbar.NewRequest().
//	    SetPosition(30, 30).
//	    Build()
//
// # Lifecycle
//
//	bar, err := segbar.Init(mask, attr, backend)
//	if err != nil {
//	    log.Fatal(segbar.StatusOf(err))
//	}
//	defer bar.Close()
//
//	for i := 0; i <= 4; i++ {
//	    if err := bar.Draw(i, 4); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Init is all-or-nothing: when any stage fails (resolution, color binding
// or window creation) everything acquired so far is released and no Bar
// is returned.
//
// # Geometry
//
// For n segments of w x h with padding p the bar measures
//
//	width  = w*n + p*(n+1) + 2
//	height = h + 2*p + 2
//
// and must fit on the screen at its position.
//
// # Errors
//
// Every failure is an *Error carrying a Status. The codes are stable and
// StatusText maps them to short descriptions.
package segbar

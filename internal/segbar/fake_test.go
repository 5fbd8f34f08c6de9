package segbar

import (
	"errors"
	"fmt"
	"strings"
)

// fakeBackend records every call made against it so tests can check
// ordering, cleanup and the exact primitives issued.
type fakeBackend struct {
	width, height int

	openErr   error
	windowErr error
	closeErr  error
	badColors map[string]bool

	calls    []string
	displays []*fakeDisplay
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{width: w, height: h, badColors: map[string]bool{}}
}

func (f *fakeBackend) Open() (Display, error) {
	f.calls = append(f.calls, "open")
	if f.openErr != nil {
		return nil, f.openErr
	}
	d := &fakeDisplay{backend: f}
	f.displays = append(f.displays, d)
	return d, nil
}

// openDisplays counts displays that were opened and never closed.
func (f *fakeBackend) openDisplays() int {
	n := 0
	for _, d := range f.displays {
		if !d.closed {
			n++
		}
	}
	return n
}

func (f *fakeBackend) hasCall(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

type fakeDisplay struct {
	backend *fakeBackend
	closed  bool
	windows []*fakeWindow
}

func (d *fakeDisplay) ScreenSize() (int, int) {
	return d.backend.width, d.backend.height
}

func (d *fakeDisplay) AllocColor(name string) (Color, error) {
	d.backend.calls = append(d.backend.calls, "color "+name)
	if d.backend.badColors[name] {
		return Color{}, fmt.Errorf("unknown color %q", name)
	}
	if !strings.HasPrefix(name, "#") || len(name) != 7 {
		return Color{Name: name}, nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(name, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, err
	}
	return Color{Name: name, R: r, G: g, B: b}, nil
}

func (d *fakeDisplay) CreateWindow(bounds Rect) (Window, error) {
	d.backend.calls = append(d.backend.calls, "window "+bounds.String())
	if d.backend.windowErr != nil {
		return nil, d.backend.windowErr
	}
	w := &fakeWindow{display: d, bounds: bounds}
	d.windows = append(d.windows, w)
	return w, nil
}

func (d *fakeDisplay) Close() error {
	d.backend.calls = append(d.backend.calls, "close")
	if d.closed {
		return errors.New("display closed twice")
	}
	d.closed = true
	return d.backend.closeErr
}

type fakeWindow struct {
	display   *fakeDisplay
	bounds    Rect
	mapped    bool
	destroyed bool
	flushes   int
	ops       []Op
}

func (w *fakeWindow) MapRaised() {
	w.mapped = true
	w.display.backend.calls = append(w.display.backend.calls, "map")
}

func (w *fakeWindow) DrawRect(r Rect, c Color) {
	w.ops = append(w.ops, Op{Kind: OpOutline, Rect: r, Color: c})
}

func (w *fakeWindow) FillRect(r Rect, c Color) {
	w.ops = append(w.ops, Op{Kind: OpFill, Rect: r, Color: c})
}

func (w *fakeWindow) Flush() {
	w.flushes++
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	w.display.backend.calls = append(w.display.backend.calls, "destroy")
}

package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/muurk/segbar/internal/logging"
	"github.com/muurk/segbar/internal/segbar"
)

const backendName = "term"

// ScreenFactory creates the tcell screen for one display connection.
type ScreenFactory func() (tcell.Screen, error)

// Backend draws bars on a terminal, one character cell per pixel.
type Backend struct {
	newScreen     ScreenFactory
	width, height int
}

// Option configures a Backend.
type Option func(*Backend)

// WithScreenFactory overrides how screens are created. Tests pass a
// factory returning tcell.NewSimulationScreen.
func WithScreenFactory(f ScreenFactory) Option {
	return func(b *Backend) {
		b.newScreen = f
	}
}

// WithSize forces the screen size after initialization. Only screens
// that support resizing (simulation screens) honour it.
func WithSize(width, height int) Option {
	return func(b *Backend) {
		b.width = width
		b.height = height
	}
}

// New creates a terminal backend using the process's controlling terminal.
func New(opts ...Option) *Backend {
	b := &Backend{newScreen: tcell.NewScreen}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open initializes a new screen. The terminal switches to the alternate
// screen until the display is closed.
func (b *Backend) Open() (segbar.Display, error) {
	screen, err := b.newScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	if b.width > 0 && b.height > 0 {
		if s, ok := screen.(interface{ SetSize(int, int) }); ok {
			s.SetSize(b.width, b.height)
		}
	}

	screen.Clear()

	w, h := screen.Size()
	logging.LogBackendEvent(backendName, "open", zap.Int("width", w), zap.Int("height", h))

	return &Display{screen: screen}, nil
}

// Display is an initialized terminal screen.
type Display struct {
	screen tcell.Screen
	closed bool
}

// Screen returns the underlying tcell screen.
func (d *Display) Screen() tcell.Screen {
	return d.screen
}

// ScreenSize returns the terminal size in cells.
func (d *Display) ScreenSize() (int, int) {
	return d.screen.Size()
}

// AllocColor resolves W3C color names and "#rrggbb" through tcell.
func (d *Display) AllocColor(name string) (segbar.Color, error) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return segbar.Color{}, fmt.Errorf("unknown color %q", name)
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return segbar.Color{}, fmt.Errorf("color %q has no RGB value", name)
	}
	return segbar.Color{Name: name, R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// CreateWindow reserves a region of the screen.
func (d *Display) CreateWindow(bounds segbar.Rect) (segbar.Window, error) {
	if d.closed {
		return nil, fmt.Errorf("display is closed")
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("empty window %s", bounds)
	}
	return &Window{screen: d.screen, bounds: bounds}, nil
}

// Close restores the terminal.
func (d *Display) Close() error {
	if d.closed {
		return fmt.Errorf("display already closed")
	}
	d.closed = true
	d.screen.Fini()
	logging.LogBackendEvent(backendName, "close")
	return nil
}

// Window is a rectangular region of the terminal. Drawing is clipped to it.
type Window struct {
	screen tcell.Screen
	bounds segbar.Rect
	mapped bool
}

// MapRaised marks the window visible; drawing before this is buffered.
func (w *Window) MapRaised() {
	w.mapped = true
	w.paint(segbar.Rect{W: w.bounds.W, H: w.bounds.H}, tcell.StyleDefault)
}

// DrawRect draws a 1-cell outline around r.
func (w *Window) DrawRect(r segbar.Rect, c segbar.Color) {
	if r.Empty() {
		return
	}
	style := styleFor(c)
	w.paint(segbar.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, style)
	w.paint(segbar.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, style)
	w.paint(segbar.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, style)
	w.paint(segbar.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, style)
}

// FillRect paints every cell of r.
func (w *Window) FillRect(r segbar.Rect, c segbar.Color) {
	w.paint(r, styleFor(c))
}

// Flush shows pending changes.
func (w *Window) Flush() {
	if w.mapped {
		w.screen.Show()
	}
}

// Destroy blanks the window's region.
func (w *Window) Destroy() {
	w.paint(segbar.Rect{W: w.bounds.W, H: w.bounds.H}, tcell.StyleDefault)
	if w.mapped {
		w.screen.Show()
	}
	w.mapped = false
}

func (w *Window) paint(r segbar.Rect, style tcell.Style) {
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, w.bounds.W)
	y1 := min(r.Y+r.H, w.bounds.H)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w.screen.SetContent(w.bounds.X+x, w.bounds.Y+y, ' ', nil, style)
		}
	}
}

func styleFor(c segbar.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

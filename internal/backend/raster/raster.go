package raster

import (
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/muurk/segbar/internal/logging"
	"github.com/muurk/segbar/internal/segbar"
)

const backendName = "png"

// Default canvas size, matching a common desktop resolution.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Backend renders bars into an in-memory canvas and writes it out as a PNG
// each time the window is flushed.
type Backend struct {
	width, height int
	output        string
	crop          bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithScreenSize sets the canvas size reported as the screen size.
func WithScreenSize(width, height int) Option {
	return func(b *Backend) {
		b.width = width
		b.height = height
	}
}

// WithOutput sets the PNG written on flush. An empty path keeps the image
// in memory only.
func WithOutput(path string) Option {
	return func(b *Backend) {
		b.output = path
	}
}

// WithCrop writes only the window's region instead of the whole canvas.
func WithCrop(crop bool) Option {
	return func(b *Backend) {
		b.crop = crop
	}
}

// New creates a raster backend.
func New(opts ...Option) *Backend {
	b := &Backend{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open allocates a new canvas cleared to black.
func (b *Backend) Open() (segbar.Display, error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", b.width, b.height)
	}

	dc := gg.NewContext(b.width, b.height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	logging.LogBackendEvent(backendName, "open",
		zap.Int("width", b.width),
		zap.Int("height", b.height),
		zap.String("output", b.output))

	return &Display{dc: dc, output: b.output, crop: b.crop}, nil
}

// Display is one canvas.
type Display struct {
	dc     *gg.Context
	output string
	crop   bool
	closed bool
	err    error
}

// ScreenSize returns the canvas size in pixels.
func (d *Display) ScreenSize() (int, int) {
	return d.dc.Width(), d.dc.Height()
}

// Image returns the canvas.
func (d *Display) Image() image.Image {
	return d.dc.Image()
}

// AllocColor accepts "#rrggbb" hex specs and SVG 1.1 color names.
func (d *Display) AllocColor(name string) (segbar.Color, error) {
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return segbar.Color{}, fmt.Errorf("invalid hex color %q: %w", name, err)
		}
		r, g, b := c.RGB255()
		return segbar.Color{Name: name, R: r, G: g, B: b}, nil
	}

	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	rgba, ok := colornames.Map[key]
	if !ok {
		return segbar.Color{}, fmt.Errorf("unknown color %q", name)
	}
	return segbar.Color{Name: name, R: rgba.R, G: rgba.G, B: rgba.B}, nil
}

// CreateWindow reserves a region of the canvas.
func (d *Display) CreateWindow(bounds segbar.Rect) (segbar.Window, error) {
	if d.closed {
		return nil, fmt.Errorf("display is closed")
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("empty window %s", bounds)
	}
	return &Window{display: d, bounds: bounds}, nil
}

// Close releases the canvas. It reports the first PNG write failure, if any.
func (d *Display) Close() error {
	if d.closed {
		return fmt.Errorf("display already closed")
	}
	d.closed = true
	logging.LogBackendEvent(backendName, "close")
	return d.err
}

func (d *Display) save(bounds segbar.Rect) {
	if d.output == "" {
		return
	}

	img := d.dc.Image()
	if d.crop {
		if sub, ok := img.(interface {
			SubImage(image.Rectangle) image.Image
		}); ok {
			img = sub.SubImage(image.Rect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H))
		}
	}

	if err := gg.SavePNG(d.output, img); err != nil {
		logging.Error("Failed to write PNG", zap.String("path", d.output), zap.Error(err))
		if d.err == nil {
			d.err = fmt.Errorf("failed to write %s: %w", d.output, err)
		}
		return
	}
	logging.LogBackendEvent(backendName, "flush", zap.String("path", d.output))
}

// Window is a region of the canvas. Coordinates passed to its drawing
// methods are relative to the window origin and clipped to its bounds.
type Window struct {
	display *Display
	bounds  segbar.Rect
	mapped  bool
}

// MapRaised makes subsequent flushes write the canvas.
func (w *Window) MapRaised() {
	w.mapped = true
}

// DrawRect draws a 1-pixel outline covering exactly r.W x r.H pixels.
func (w *Window) DrawRect(r segbar.Rect, c segbar.Color) {
	if r.Empty() {
		return
	}
	w.fill(segbar.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	w.fill(segbar.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	w.fill(segbar.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	w.fill(segbar.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// FillRect paints every pixel of r.
func (w *Window) FillRect(r segbar.Rect, c segbar.Color) {
	w.fill(r, c)
}

// Flush writes the canvas when the window is mapped.
func (w *Window) Flush() {
	if w.mapped {
		w.display.save(w.bounds)
	}
}

// Destroy unmaps the window. Pixels already drawn stay on the canvas.
func (w *Window) Destroy() {
	w.mapped = false
}

func (w *Window) fill(r segbar.Rect, c segbar.Color) {
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, w.bounds.W)
	y1 := min(r.Y+r.H, w.bounds.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	dc := w.display.dc
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
	dc.DrawRectangle(float64(w.bounds.X+x0), float64(w.bounds.Y+y0), float64(x1-x0), float64(y1-y0))
	dc.Fill()
}

package segbar

import "fmt"

// Backend opens connections to a drawing system. Each Bar opens exactly
// one Display and closes it on teardown.
type Backend interface {
	Open() (Display, error)
}

// ColorSpace resolves color names to drawable colors.
type ColorSpace interface {
	// AllocColor resolves a name such as "green" or "#3475aa". An error
	// means the name is unknown to this backend.
	AllocColor(name string) (Color, error)
}

// Display is an open connection to a drawing system.
type Display interface {
	ColorSpace

	// ScreenSize returns the drawable extent in pixels.
	ScreenSize() (width, height int)

	// CreateWindow allocates a window and its drawing context at bounds.
	CreateWindow(bounds Rect) (Window, error)

	// Close releases the connection. Windows must be destroyed first.
	Close() error
}

// Window is a drawable surface. Coordinates are relative to the window's
// top-left corner. Draw primitives cannot fail once the window exists.
type Window interface {
	// MapRaised makes the window visible above its siblings.
	MapRaised()

	// DrawRect outlines r with a 1 px line; the outline covers exactly
	// r.W x r.H pixels.
	DrawRect(r Rect, c Color)

	// FillRect paints r.W x r.H pixels. Empty rectangles draw nothing.
	FillRect(r Rect, c Color)

	// Flush pushes pending drawing to the screen.
	Flush()

	// Destroy releases the window.
	Destroy()
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Color is a resolved drawable color.
type Color struct {
	Name    string // Name the color was resolved from
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

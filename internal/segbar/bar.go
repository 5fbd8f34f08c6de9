package segbar

import (
	"go.uber.org/zap"

	"github.com/muurk/segbar/internal/logging"
)

// State is a Bar's position in its lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDestroyed:
		return "destroyed"
	default:
		return "uninitialized"
	}
}

// Bar is a segmented progress bar bound to one backend window.
//
// A Bar is returned only by a fully successful Init and must be released
// with Close. It is not safe for concurrent use; callers that draw from
// several goroutines must serialize access themselves.
type Bar struct {
	layout Layout
	fg, bg Color

	display Display
	window  Window
	state   State
}

// releaser collects teardown steps while a Bar is being built so a
// failure at any stage can undo the steps already taken, newest first.
type releaser []func()

func (r *releaser) push(f func()) {
	*r = append(*r, f)
}

func (r *releaser) unwind() {
	for i := len(*r) - 1; i >= 0; i-- {
		(*r)[i]()
	}
	*r = nil
}

// Init resolves the request, binds its colors and creates a window on a
// fresh connection from backend. Any failure releases everything acquired
// so far and returns a nil Bar.
//
// A nil backend, or a nil attr with a non-empty mask, is reported as
// StatusBadRef before the backend is touched.
func Init(mask Mask, attr *Attr, backend Backend) (bar *Bar, err error) {
	if backend == nil {
		return nil, badRef("backend")
	}
	if attr == nil && mask != 0 {
		return nil, badRef("attr")
	}

	var cleanup releaser
	defer func() {
		if err != nil {
			logging.Debug("Bar initialization failed, releasing resources",
				zap.Int("steps", len(cleanup)),
				zap.Stringer("status", StatusOf(err)),
			)
			cleanup.unwind()
		}
	}()

	display, err := backend.Open()
	if err != nil {
		return nil, &Error{Status: StatusNoDisplay, Err: err}
	}
	cleanup.push(func() {
		if cerr := display.Close(); cerr != nil {
			logging.Warn("Failed to close display during unwind", zap.Error(cerr))
		}
	})

	screenW, screenH := display.ScreenSize()

	layout, err := Resolve(mask, attr, screenW, screenH)
	if err != nil {
		return nil, err
	}

	fg, bg, err := BindColors(mask, attr, display)
	if err != nil {
		return nil, err
	}

	window, err := display.CreateWindow(layout.Bounds())
	if err != nil {
		return nil, &Error{Status: StatusNoMem, Field: "window", Value: layout.Bounds().String(), Err: err}
	}
	cleanup.push(window.Destroy)

	window.MapRaised()
	window.Flush()

	logging.Info("Bar initialized",
		zap.Stringer("layout", layout),
		zap.String("fg", fg.Hex()),
		zap.String("bg", bg.Hex()),
	)

	return &Bar{
		layout:  *layout,
		fg:      fg,
		bg:      bg,
		display: display,
		window:  window,
		state:   StateReady,
	}, nil
}

// Layout returns a copy of the resolved geometry.
func (b *Bar) Layout() Layout {
	if b == nil {
		return Layout{}
	}
	return b.layout
}

// Colors returns the bound foreground and background colors.
func (b *Bar) Colors() (fg, bg Color) {
	if b == nil {
		return Color{}, Color{}
	}
	return b.fg, b.bg
}

// State returns the lifecycle state. A nil Bar is uninitialized.
func (b *Bar) State() State {
	if b == nil {
		return StateUninitialized
	}
	return b.state
}

func (b *Bar) check() error {
	if b == nil {
		return badRef("bar")
	}
	if b.state != StateReady {
		return badRef("bar " + b.state.String())
	}
	return nil
}

// Draw renders the bar filled to current/max and flushes the window.
// Either every primitive is issued or none is: all argument checks happen
// before the first draw call.
func (b *Bar) Draw(current, max int) error {
	if err := b.check(); err != nil {
		return err
	}

	percent, err := Percent(current, max)
	if err != nil {
		return err
	}

	for _, op := range Plan(b.layout, b.fg, b.bg, percent) {
		switch op.Kind {
		case OpOutline:
			b.window.DrawRect(op.Rect, op.Color)
		case OpFill:
			if !op.Rect.Empty() {
				b.window.FillRect(op.Rect, op.Color)
			}
		}
	}
	b.window.Flush()

	logging.Debug("Bar drawn",
		zap.Int("current", current),
		zap.Int("max", max),
		zap.Float64("percent", percent),
	)

	return nil
}

// Close destroys the window and closes the display connection. Using the
// Bar afterwards, including a second Close, reports StatusBadRef.
//
// The Bar is torn down even when the display fails to close; that failure
// (for example an image that could not be written) is returned with
// StatusNoDisplay.
func (b *Bar) Close() error {
	if err := b.check(); err != nil {
		return err
	}

	b.window.Destroy()
	err := b.display.Close()

	b.window = nil
	b.display = nil
	b.state = StateDestroyed

	if err != nil {
		logging.Warn("Display close reported an error", zap.Error(err))
		return &Error{Status: StatusNoDisplay, Field: "display", Err: err}
	}

	logging.Info("Bar closed")
	return nil
}

package segbar

import (
	"errors"
	"reflect"
	"testing"
)

func TestInitDefaults(t *testing.T) {
	backend := newFakeBackend(1920, 1080)

	bar, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if bar.State() != StateReady {
		t.Errorf("Expected state ready, got %v", bar.State())
	}

	l := bar.Layout()
	if l.Width != 284 || l.Height != 26 || l.X != 818 || l.Y != 999 {
		t.Errorf("Unexpected layout %+v", l)
	}

	fg, bg := bar.Colors()
	if fg.Hex() != DefaultForeground {
		t.Errorf("Expected fg %s, got %s", DefaultForeground, fg.Hex())
	}
	if bg.Hex() != DefaultBackground {
		t.Errorf("Expected bg %s, got %s", DefaultBackground, bg.Hex())
	}

	wantCalls := []string{
		"open",
		"color " + DefaultForeground,
		"color " + DefaultBackground,
		"window 284x26+818+999",
		"map",
	}
	if !reflect.DeepEqual(backend.calls, wantCalls) {
		t.Errorf("Expected calls %v, got %v", wantCalls, backend.calls)
	}

	win := backend.displays[0].windows[0]
	if !win.mapped || win.flushes != 1 {
		t.Errorf("Expected window mapped and flushed once, got mapped=%v flushes=%d", win.mapped, win.flushes)
	}

	if err := bar.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestInitFailuresReleaseEverything(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeBackend) (Mask, *Attr)
		want  Status
	}{
		{
			name: "bad count",
			setup: func(f *fakeBackend) (Mask, *Attr) {
				return NewRequest().SetSegments(-1).Build()
			},
			want: StatusBadSegments,
		},
		{
			name: "too large",
			setup: func(f *fakeBackend) (Mask, *Attr) {
				return NewRequest().SetSegmentWidth(2000).SetSegments(1000).SetX(0).Build()
			},
			want: StatusTooLarge,
		},
		{
			name: "bad foreground",
			setup: func(f *fakeBackend) (Mask, *Attr) {
				f.badColors["mauve-ish"] = true
				return NewRequest().SetForeground("mauve-ish").Build()
			},
			want: StatusBadForeground,
		},
		{
			name: "bad background",
			setup: func(f *fakeBackend) (Mask, *Attr) {
				f.badColors["nope"] = true
				return NewRequest().SetBackground("nope").Build()
			},
			want: StatusBadBackground,
		},
		{
			name: "window allocation",
			setup: func(f *fakeBackend) (Mask, *Attr) {
				f.windowErr = errors.New("BadAlloc")
				return NewRequest().Build()
			},
			want: StatusNoMem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend(1920, 1080)
			mask, attr := tt.setup(backend)

			bar, err := Init(mask, attr, backend)
			if bar != nil {
				t.Error("Expected no bar on failure")
			}
			if got := StatusOf(err); got != tt.want {
				t.Errorf("Expected status %v, got %v (%v)", tt.want, got, err)
			}
			if n := backend.openDisplays(); n != 0 {
				t.Errorf("Expected every display closed after failure, %d still open", n)
			}
			if backend.hasCall("map") {
				t.Error("Window must not be mapped after a failed init")
			}
		})
	}
}

func TestInitColorShortCircuit(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	backend.badColors["bogus"] = true
	mask, attr := NewRequest().SetColors("bogus", "#000000").Build()

	_, err := Init(mask, attr, backend)
	if StatusOf(err) != StatusBadForeground {
		t.Fatalf("Expected bad foreground, got %v", err)
	}
	if backend.hasCall("color #000000") {
		t.Error("Background must not be resolved after the foreground fails")
	}
	if backend.hasCall("window") {
		t.Error("No window should be created after a color failure")
	}
}

func TestInitBadReferences(t *testing.T) {
	t.Run("nil backend", func(t *testing.T) {
		bar, err := Init(0, nil, nil)
		if bar != nil || !IsBadRef(err) {
			t.Errorf("Expected bad reference and no bar, got %v, %v", bar, err)
		}
	})

	t.Run("nil attr with mask", func(t *testing.T) {
		backend := newFakeBackend(1920, 1080)
		bar, err := Init(MaskX|MaskY, nil, backend)
		if bar != nil || !IsBadRef(err) {
			t.Errorf("Expected bad reference and no bar, got %v, %v", bar, err)
		}
		if len(backend.calls) != 0 {
			t.Errorf("Expected no backend calls, got %v", backend.calls)
		}
	})

	t.Run("open fails", func(t *testing.T) {
		backend := newFakeBackend(1920, 1080)
		backend.openErr = errors.New("no terminal")
		bar, err := Init(0, nil, backend)
		if bar != nil || StatusOf(err) != StatusNoDisplay {
			t.Errorf("Expected cannot open display, got %v", err)
		}
		if !errors.Is(err, backend.openErr) {
			t.Error("Expected the backend error to be wrapped")
		}
	})
}

func TestInitUnwindsWindowOnLateFailure(t *testing.T) {
	// A close error during unwind is logged, not reported over the original
	backend := newFakeBackend(1920, 1080)
	backend.windowErr = errors.New("BadAlloc")
	backend.closeErr = errors.New("broken pipe")

	_, err := Init(0, nil, backend)
	if StatusOf(err) != StatusNoMem {
		t.Fatalf("Expected out of memory, got %v", err)
	}
	if backend.openDisplays() != 0 {
		t.Error("Expected display closed")
	}
}

func TestDrawScenario(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	mask, attr := NewRequest().SetPosition(30, 30).Build()

	bar, err := Init(mask, attr, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = bar.Close() }()

	if l := bar.Layout(); l.X != 30 || l.Y != 30 {
		t.Errorf("Expected position (30,30), got (%d,%d)", l.X, l.Y)
	}

	win := backend.displays[0].windows[0]
	for i := 0; i <= 4; i++ {
		win.ops = nil
		if err := bar.Draw(i, 4); err != nil {
			t.Fatalf("Draw(%d, 4) error = %v", i, err)
		}

		full := 0
		for _, op := range win.ops[2:] {
			if op.Kind == OpFill && op.Rect.W == DefaultSegmentWidth-4 {
				full++
			}
		}
		if want := i * DefaultSegments / 4; full != want {
			t.Errorf("Draw(%d, 4): expected %d full segments, got %d", i, want, full)
		}
	}
}

func TestDrawSkipsEmptyFills(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	bar, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = bar.Close() }()

	win := backend.displays[0].windows[0]
	if err := bar.Draw(0, 10); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	// frame, interior, then one outline per segment and no fills
	if got, want := len(win.ops), 2+DefaultSegments; got != want {
		t.Errorf("Expected %d primitives for an empty bar, got %d", want, got)
	}
	for _, op := range win.ops {
		if op.Kind == OpFill && op.Rect.Empty() {
			t.Errorf("Empty fill issued: %+v", op)
		}
	}
}

func TestDrawIdempotent(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	bar, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = bar.Close() }()

	win := backend.displays[0].windows[0]

	if err := bar.Draw(7, 13); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	first := append([]Op(nil), win.ops...)

	win.ops = nil
	if err := bar.Draw(7, 13); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if !reflect.DeepEqual(first, win.ops) {
		t.Error("Expected identical primitives for repeated draws")
	}
}

func TestDrawBadRange(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	bar, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = bar.Close() }()

	win := backend.displays[0].windows[0]
	if err := bar.Draw(1, 0); StatusOf(err) != StatusBadRange {
		t.Errorf("Expected bad range, got %v", err)
	}
	if len(win.ops) != 0 {
		t.Errorf("Expected nothing drawn, got %d primitives", len(win.ops))
	}
}

func TestCloseLifecycle(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	bar, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	win := backend.displays[0].windows[0]

	if err := bar.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !win.destroyed {
		t.Error("Expected window destroyed")
	}
	if backend.openDisplays() != 0 {
		t.Error("Expected display closed")
	}
	if bar.State() != StateDestroyed {
		t.Errorf("Expected destroyed state, got %v", bar.State())
	}

	if err := bar.Close(); !IsBadRef(err) {
		t.Errorf("Second Close(): expected bad reference, got %v", err)
	}
	if err := bar.Draw(1, 2); !IsBadRef(err) {
		t.Errorf("Draw after Close(): expected bad reference, got %v", err)
	}
}

func TestCloseReportsDisplayError(t *testing.T) {
	backend := newFakeBackend(1920, 1080)
	bar, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	win := backend.displays[0].windows[0]

	backend.closeErr = errors.New("write failed")
	err = bar.Close()
	if StatusOf(err) != StatusNoDisplay {
		t.Errorf("Expected cannot open display, got %v", err)
	}
	if !errors.Is(err, backend.closeErr) {
		t.Error("Expected the backend error to be wrapped")
	}

	// Teardown still completes
	if !win.destroyed {
		t.Error("Expected window destroyed")
	}
	if backend.openDisplays() != 0 {
		t.Error("Expected display closed")
	}
	if bar.State() != StateDestroyed {
		t.Errorf("Expected destroyed state, got %v", bar.State())
	}
	if err := bar.Close(); !IsBadRef(err) {
		t.Errorf("Second Close(): expected bad reference, got %v", err)
	}
}

func TestNilBar(t *testing.T) {
	var bar *Bar

	if err := bar.Draw(1, 2); !IsBadRef(err) {
		t.Errorf("Draw on nil bar: expected bad reference, got %v", err)
	}
	if err := bar.Close(); !IsBadRef(err) {
		t.Errorf("Close on nil bar: expected bad reference, got %v", err)
	}
	if bar.State() != StateUninitialized {
		t.Errorf("Expected uninitialized, got %v", bar.State())
	}
	if l := bar.Layout(); l != (Layout{}) {
		t.Errorf("Expected zero layout, got %+v", l)
	}
}

func TestEachBarOwnsItsDisplay(t *testing.T) {
	backend := newFakeBackend(1920, 1080)

	a, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b, err := Init(0, nil, backend)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if len(backend.displays) != 2 {
		t.Fatalf("Expected two displays, got %d", len(backend.displays))
	}

	_ = a.Close()
	if backend.openDisplays() != 1 {
		t.Error("Closing one bar must not close the other's display")
	}
	if err := b.Draw(1, 2); err != nil {
		t.Errorf("Draw on surviving bar error = %v", err)
	}
	_ = b.Close()
}

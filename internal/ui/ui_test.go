package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/segbar/internal/segbar"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		n       int
		want    string
	}{
		{"empty", 0, 4, "░░░░"},
		{"full", 100, 4, "████"},
		{"half of second", 37.5, 4, "█▓░░"},
		{"fifth of second", 30, 4, "█▒░░"},
		{"no segments", 50, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Segments(tt.percent, tt.n); got != tt.want {
				t.Errorf("Segments(%v, %d) = %q, want %q", tt.percent, tt.n, got, tt.want)
			}
		})
	}
}

func TestSegmentsScalesLongBars(t *testing.T) {
	got := Segments(50, 100)
	if !strings.HasSuffix(got, " (+40)") {
		t.Errorf("Expected overflow marker, got %q", got)
	}
	glyphs := strings.TrimSuffix(got, " (+40)")
	if n := len([]rune(glyphs)); n != 60 {
		t.Errorf("Expected 60 glyphs, got %d", n)
	}
	if full := strings.Count(glyphs, glyphFull); full != 30 {
		t.Errorf("Expected 30 full glyphs at 50%%, got %d", full)
	}
}

func TestPreviewRenderStep(t *testing.T) {
	l := segbar.Layout{Segments: 4}
	p := NewPreview(l, segbar.Color{R: 0x34, G: 0x75, B: 0xaa}, segbar.Color{}).SetWidth(80)

	out, err := p.RenderStep(2, 4)
	if err != nil {
		t.Fatalf("RenderStep() error = %v", err)
	}
	for _, want := range []string{"██░░", "50%", "[2/4]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in preview:\n%s", want, out)
		}
	}

	if _, err := p.RenderStep(1, 0); segbar.StatusOf(err) != segbar.StatusBadRange {
		t.Errorf("Expected bad range, got %v", err)
	}
}

func TestHintLines(t *testing.T) {
	err := &segbar.Error{Status: segbar.StatusTooLarge}
	tips := HintLines(err)
	if len(tips) == 0 {
		t.Fatal("Expected troubleshooting tips")
	}
	for _, tip := range tips {
		if tip == "Troubleshooting:" || strings.HasPrefix(tip, "•") {
			t.Errorf("Tip should be stripped of markup, got %q", tip)
		}
	}
	if !containsLine(tips, "Reduce the padding") {
		t.Errorf("Expected padding tip, got %v", tips)
	}

	if HintLines(nil) != nil {
		t.Error("Expected no tips for a nil error")
	}
}

func TestBarFailureBox(t *testing.T) {
	err := &segbar.Error{Status: segbar.StatusTooLarge, Field: "width", Value: 5000}
	out := NewBarFailure("Draw failed", err).SetWidth(80).Render()

	for _, want := range []string{"FAILED", "Draw failed", "10 (bar too large)", "Troubleshooting:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in failure box:\n%s", want, out)
		}
	}

	plain := NewBarFailure("Other", errors.New("disk full")).SetWidth(80).Render()
	if strings.Contains(plain, "Status:") {
		t.Error("Errors without a status should not show a status detail")
	}
}

func TestResultDetailsKeepOrder(t *testing.T) {
	out := NewSuccessResult("Done", Param{"First", "1"}, Param{"Second", "2"}).SetWidth(80).Render()
	first := strings.Index(out, "First")
	second := strings.Index(out, "Second")
	if first < 0 || second < 0 || first > second {
		t.Errorf("Expected details in insertion order:\n%s", out)
	}
	if !strings.Contains(out, "SUCCESS") {
		t.Error("Expected SUCCESS title")
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("draw", "segbar draw --current 2", Param{"Backend", "png"}).SetWidth(70).Render()
	for _, want := range []string{"DRAW", "segbar draw --current 2", "Backend:", "png"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in header:\n%s", want, out)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	l := segbar.Layout{
		Segments: 20, Padding: 2, SegmentWidth: 12, SegmentHeight: 20,
		Width: 284, Height: 26, X: 818, Y: 999,
	}
	fg := segbar.Color{Name: "#3475aa", R: 0x34, G: 0x75, B: 0xaa}
	bg := segbar.Color{Name: "green", G: 0x80}

	out := RenderLayout(l, fg, bg, 80)
	for _, want := range []string{"284x26", "12x20", "(818, 999)", "#3475aa", "green (#008000)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in layout:\n%s", want, out)
		}
	}
}

func TestRenderStatusTable(t *testing.T) {
	out := RenderStatusTable([]segbar.Status{segbar.StatusSuccess, segbar.StatusTooLarge, segbar.Status(99)})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "10") || !strings.Contains(lines[1], "bar too large") {
		t.Errorf("Unexpected line %q", lines[1])
	}
	if !strings.Contains(lines[2], segbar.UnrecognizedStatus) {
		t.Errorf("Expected unrecognized status, got %q", lines[2])
	}
}

func TestRenderProfileList(t *testing.T) {
	out := RenderProfileList([]ProfileRow{
		{Name: "top-left", Mask: segbar.MaskX | segbar.MaskY, Builtin: true, Description: "Default bar at (30,30)"},
		{Name: "work", Mask: segbar.MaskSegments},
	})
	for _, want := range []string{"top-left", "x|y", "[built-in]", "Default bar at (30,30)", "work", "segments"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in listing:\n%s", want, out)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact", "work\n", true},
		{"surrounding space", "  work  \n", true},
		{"wrong", "yes\n", false},
		{"no input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Delete profile", []string{"This cannot be undone"}, "work")
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Delete profile") {
				t.Error("Expected the warning box to be printed")
			}
		})
	}
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintBarError("Init failed", &segbar.Error{Status: segbar.StatusBadPadding, Field: "padding", Value: 0})
	if !strings.Contains(buf.String(), "bad padding") {
		t.Errorf("Expected error text in output:\n%s", buf.String())
	}
	if p.Width() != 80 {
		t.Errorf("Expected width 80, got %d", p.Width())
	}
}

func containsLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/segbar/internal/segbar"
)

// Segment glyphs, from empty to full.
const (
	glyphEmpty   = "░"
	glyphSome    = "▒"
	glyphHalf    = "▓"
	glyphFull    = "█"
	maxGlyphs    = 60
	barMinWidth  = 20
	barMaxWidth  = 50
	previewInset = 20 // room for the percentage and counter
)

// Preview renders a bar's state as text: one glyph per segment followed by
// a continuous progress bar and the percentage.
type Preview struct {
	Segments int
	Fg, Bg   segbar.Color
	Width    int
	bar      progress.Model
}

// NewPreview creates a preview for a resolved layout.
func NewPreview(l segbar.Layout, fg, bg segbar.Color) *Preview {
	p := &Preview{Segments: l.Segments, Fg: fg, Bg: bg}
	return p.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (p *Preview) SetWidth(width int) *Preview {
	p.Width = width
	barWidth := width - previewInset
	if barWidth < barMinWidth {
		barWidth = barMinWidth
	}
	if barWidth > barMaxWidth {
		barWidth = barMaxWidth
	}
	p.bar = progress.New(
		progress.WithSolidFill(p.Fg.Hex()),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return p
}

// Render returns the preview for the given percentage (0-100).
func (p *Preview) Render(percent float64) string {
	segments := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Fg.Hex())).
		Render(Segments(percent, p.Segments))

	barLine := fmt.Sprintf("%s  %3.0f%%", p.bar.ViewAs(percent/100), percent)

	return lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render(segments),
		LabelStyle.Render(barLine),
	)
}

// RenderStep renders the preview for current out of max, with a counter.
func (p *Preview) RenderStep(current, max int) (string, error) {
	percent, err := segbar.Percent(current, max)
	if err != nil {
		return "", err
	}
	counter := NoteStyle.Render(fmt.Sprintf("[%d/%d]", current, max))
	return p.Render(percent) + "  " + counter, nil
}

// Segments returns one glyph per segment showing how full each one is.
// Bars with more than 60 segments are scaled down to 60 glyphs.
func Segments(percent float64, n int) string {
	if n <= 0 {
		return ""
	}

	shown := min(n, maxGlyphs)
	var b strings.Builder
	for i := 0; i < shown; i++ {
		b.WriteString(glyph(segbar.SegmentFill(percent, i, shown)))
	}
	if shown < n {
		fmt.Fprintf(&b, " (+%d)", n-shown)
	}
	return b.String()
}

func glyph(fill float64) string {
	switch {
	case fill >= 1:
		return glyphFull
	case fill >= 0.5:
		return glyphHalf
	case fill > 0:
		return glyphSome
	default:
		return glyphEmpty
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/segbar/internal/segbar"
)

// RenderLayout renders a resolved layout and its colors as a boxed table.
func RenderLayout(l segbar.Layout, fg, bg segbar.Color, width int) string {
	width = clampWidth(width)

	rows := []Param{
		{"Segments", fmt.Sprintf("%d", l.Segments)},
		{"Segment size", fmt.Sprintf("%dx%d", l.SegmentWidth, l.SegmentHeight)},
		{"Padding", fmt.Sprintf("%d", l.Padding)},
		{"Bar size", fmt.Sprintf("%dx%d", l.Width, l.Height)},
		{"Position", fmt.Sprintf("(%d, %d)", l.X, l.Y)},
		{"Foreground", Swatch(fg.Hex()) + " " + colorLabel(fg)},
		{"Background", Swatch(bg.Hex()) + " " + colorLabel(bg)},
	}

	lines := []string{HeaderTitleStyle.UnsetPaddingLeft().Render("LAYOUT"), ""}
	for _, r := range rows {
		lines = append(lines, KeyStyle.Render(r.Key+":")+" "+ValueStyle.Render(r.Value))
	}

	return BoxStyle(width, lipgloss.RoundedBorder(), PrimaryColor).Render(strings.Join(lines, "\n"))
}

func colorLabel(c segbar.Color) string {
	if c.Name == "" || strings.EqualFold(c.Name, c.Hex()) {
		return c.Hex()
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Hex())
}

// RenderStatusTable lists status codes with their descriptions. Codes
// outside the known range are listed as unrecognized.
func RenderStatusTable(statuses []segbar.Status) string {
	codeStyle := lipgloss.NewStyle().Foreground(MutedColor).Width(6).Align(lipgloss.Right)

	var lines []string
	for _, s := range statuses {
		text := segbar.StatusText(s)
		style := ValueStyle
		switch {
		case s == segbar.StatusSuccess:
			style = lipgloss.NewStyle().Foreground(SuccessColor)
		case text == segbar.UnrecognizedStatus:
			style = NoteStyle
		}
		lines = append(lines, codeStyle.Render(fmt.Sprintf("%d", int(s)))+"  "+style.Render(text))
	}
	return strings.Join(lines, "\n")
}

// ProfileRow is one entry in a profile listing.
type ProfileRow struct {
	Name        string
	Description string
	Mask        segbar.Mask
	Builtin     bool
}

// RenderProfileList renders profiles one per line with the fields they set.
func RenderProfileList(rows []ProfileRow) string {
	nameStyle := lipgloss.NewStyle().Foreground(TextColor).Bold(true).Width(16)

	var lines []string
	for _, r := range rows {
		line := "  " + nameStyle.Render(r.Name) + " " + NoteStyle.Render(r.Mask.String())
		if r.Builtin {
			line += " " + lipgloss.NewStyle().Foreground(PrimaryColor).Render("[built-in]")
		}
		if r.Description != "" {
			line += "\n  " + strings.Repeat(" ", 17) + lipgloss.NewStyle().Foreground(MutedColor).Render(r.Description)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

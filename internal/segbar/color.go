package segbar

import (
	"go.uber.org/zap"

	"github.com/muurk/segbar/internal/logging"
)

// BindColors resolves the foreground and background names selected by
// mask against cs. The foreground is resolved first; if it fails the
// background is not attempted.
func BindColors(mask Mask, attr *Attr, cs ColorSpace) (fg, bg Color, err error) {
	if cs == nil {
		return Color{}, Color{}, badRef("color space")
	}
	if attr == nil && mask != 0 {
		return Color{}, Color{}, badRef("attr")
	}

	fgName := attr.foreground(mask)
	fg, err = cs.AllocColor(fgName)
	if err != nil {
		return Color{}, Color{}, &Error{Status: StatusBadForeground, Field: "fg", Value: fgName, Err: err}
	}

	bgName := attr.background(mask)
	bg, err = cs.AllocColor(bgName)
	if err != nil {
		return Color{}, Color{}, &Error{Status: StatusBadBackground, Field: "bg", Value: bgName, Err: err}
	}

	logging.Debug("Colors bound",
		zap.String("fg", fg.Hex()),
		zap.String("bg", bg.Hex()),
	)

	return fg, bg, nil
}

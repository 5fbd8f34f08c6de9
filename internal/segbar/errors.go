package segbar

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the outcome code reported by every public entry point.
// The numeric values are stable and safe to persist or compare across
// releases.
type Status int

const (
	// StatusSuccess indicates the operation completed
	StatusSuccess Status = iota
	// StatusBadSegments indicates a segment count below 1
	StatusBadSegments
	// StatusBadPadding indicates a padding below 1
	StatusBadPadding
	// StatusBadSegmentWidth indicates a segment width below MinSegmentSize
	StatusBadSegmentWidth
	// StatusBadSegmentHeight indicates a segment height below MinSegmentSize
	StatusBadSegmentHeight
	// StatusBadX indicates an x-position outside the screen
	StatusBadX
	// StatusBadY indicates a y-position outside the screen
	StatusBadY
	// StatusBadForeground indicates the foreground color could not be resolved
	StatusBadForeground
	// StatusBadBackground indicates the background color could not be resolved
	StatusBadBackground
	// StatusNoMem indicates the backend could not allocate the window
	StatusNoMem
	// StatusTooLarge indicates the bar would extend off-screen
	StatusTooLarge
	// StatusBadRef indicates a nil handle, nil backend, a closed handle,
	// or a request whose mask names fields that were never supplied
	StatusBadRef
	// StatusBadRange indicates a progress sample with max <= 0
	StatusBadRange
	// StatusNoDisplay indicates the backend connection could not be opened
	StatusNoDisplay

	statusEnd
)

// StatusUnknown is reported by StatusOf for errors that carry no status.
const StatusUnknown Status = -1

var statusText = [statusEnd]string{
	StatusSuccess:          "success",
	StatusBadSegments:      "bad number of segments",
	StatusBadPadding:       "bad padding",
	StatusBadSegmentWidth:  "bad segment width",
	StatusBadSegmentHeight: "bad segment height",
	StatusBadX:             "bad x-position",
	StatusBadY:             "bad y-position",
	StatusBadForeground:    "bad foreground color",
	StatusBadBackground:    "bad background color",
	StatusNoMem:            "out of memory",
	StatusTooLarge:         "bar too large",
	StatusBadRef:           "bad reference",
	StatusBadRange:         "bad progress range",
	StatusNoDisplay:        "cannot open display",
}

// UnrecognizedStatus is returned by StatusText for codes outside the table.
const UnrecognizedStatus = "unrecognized status"

// StatusText returns the human-readable description of a status code.
func StatusText(s Status) string {
	if s < StatusSuccess || s >= statusEnd {
		return UnrecognizedStatus
	}
	return statusText[s]
}

// Statuses returns every known status code in numeric order.
func Statuses() []Status {
	out := make([]Status, 0, int(statusEnd))
	for s := StatusSuccess; s < statusEnd; s++ {
		out = append(out, s)
	}
	return out
}

// String implements fmt.Stringer
func (s Status) String() string {
	return StatusText(s)
}

// Error describes a failed operation. Field names the attribute that was
// rejected, when there is one.
type Error struct {
	Status Status // Outcome code
	Field  string // Offending attribute (e.g. "segments"), may be empty
	Value  any    // Offending value, may be nil
	Err    error  // Underlying backend error, may be nil
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(StatusText(e.Status))
	if e.Field != "" {
		if e.Value != nil {
			fmt.Fprintf(&b, ": %s=%v", e.Field, e.Value)
		} else {
			fmt.Fprintf(&b, ": %s", e.Field)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error carrying the same status, so
// errors.Is(err, &Error{Status: StatusTooLarge}) works across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Status == e.Status
}

func newError(s Status, field string, value any) *Error {
	return &Error{Status: s, Field: field, Value: value}
}

func badRef(what string) *Error {
	return &Error{Status: StatusBadRef, Field: what}
}

// StatusOf extracts the status code carried by err. A nil error is
// StatusSuccess; an error that carries no *Error is StatusUnknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusUnknown
}

// IsValidationError checks if an error was caused by the attribute request
// itself, i.e. a corrected request would succeed.
func IsValidationError(err error) bool {
	switch StatusOf(err) {
	case StatusBadSegments, StatusBadPadding,
		StatusBadSegmentWidth, StatusBadSegmentHeight,
		StatusBadX, StatusBadY, StatusTooLarge:
		return true
	}
	return false
}

// IsColorError checks if an error came from color binding
func IsColorError(err error) bool {
	s := StatusOf(err)
	return s == StatusBadForeground || s == StatusBadBackground
}

// IsBadRef checks if an error reports a nil or stale reference
func IsBadRef(err error) bool {
	return StatusOf(err) == StatusBadRef
}

// GetTroubleshootingHint returns user-friendly advice for an error
func GetTroubleshootingHint(err error) string {
	switch StatusOf(err) {
	case StatusSuccess:
		return ""
	case StatusBadSegments:
		return "The bar needs at least one segment. Pass a positive segment count."
	case StatusBadPadding:
		return "Padding must be at least 1 pixel."
	case StatusBadSegmentWidth, StatusBadSegmentHeight:
		return strings.Join([]string{
			fmt.Sprintf("Segments must be at least %dx%d pixels.", MinSegmentSize, MinSegmentSize),
			"Each side needs 1 pixel of outline and 1 pixel of gap,",
			"leaving at least 1 pixel for the fill.",
		}, "\n")
	case StatusBadX, StatusBadY:
		return "The position must lie on the screen: 0 <= x <= width and 0 <= y <= height."
	case StatusTooLarge:
		return strings.Join([]string{
			"The bar would extend past the edge of the screen.",
			"Troubleshooting:",
			"  • Reduce the segment count or segment size",
			"  • Reduce the padding",
			"  • Move the bar closer to the top-left corner",
		}, "\n")
	case StatusBadForeground, StatusBadBackground:
		return "Colors must be a known name (e.g. \"green\") or a #rrggbb hex value."
	case StatusNoDisplay:
		return strings.Join([]string{
			"The drawing backend could not be opened or did not finish writing.",
			"Troubleshooting:",
			"  • For the terminal backend, run from an interactive terminal",
			"  • Use --backend png to render to an image instead",
			"  • For the png backend, check that the --out directory exists and is writable",
		}, "\n")
	case StatusNoMem:
		return "The backend could not allocate a window of the requested size."
	case StatusBadRange:
		return "The maximum progress value must be greater than zero."
	case StatusBadRef:
		return "A required handle or request was missing, or the bar was already closed."
	default:
		return "An unexpected error occurred. Please check the error message for details."
	}
}

// Package ui renders the segbar command's terminal output with lipgloss.
//
// Everything here follows a "render once and print" pattern: components
// build a string and the Printer writes it. There is no event loop, so
// the terminal drawing backend can own the screen while a bar is shown.
//
// Components:
//
//   - Header: command banner with the parameters in effect
//   - Result: success, warning and failure boxes; NewBarFailure adds the
//     status code and troubleshooting tips for bar errors
//   - Preview: text rendering of a bar's fill, one glyph per segment plus
//     a bubbles progress bar
//   - RenderLayout, RenderStatusTable, RenderProfileList: tables
//
// Logging is controlled separately through SEGBAR_LOG_LEVEL and is silent
// by default, so curated output is not interleaved with log lines.
package ui

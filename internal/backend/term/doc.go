// Package term draws segmented bars on a terminal using tcell.
//
// Each character cell is treated as one pixel: a filled pixel is a space
// with its background set to the pixel color. Terminals are small, so a
// bar meant for the terminal needs compact geometry, e.g. 10 segments of
// 5x5 with 1 cell of padding (63x9 cells).
package term

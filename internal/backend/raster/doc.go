// Package raster renders segmented bars into PNG images with fogleman/gg.
//
// The canvas plays the role of the screen. Each flush of a mapped window
// rewrites the output file, so a caller drawing in a loop leaves the last
// frame on disk. With cropping enabled only the bar's own rectangle is
// written.
package raster

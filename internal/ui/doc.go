// Package ui provides theme and color support for the stderr report printed
// by the benchmark program. Standard output never carries color codes, so the
// measured output stays identical across terminals.
package ui

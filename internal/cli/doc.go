// Package cli renders the benchmark programs' output.
//
// # Naming Conventions
//
//   - Print* and Display* functions write formatted output to an [io.Writer].
//     Print* functions emit fixed banner lines, Display* functions render data.
//   - Format* functions return a formatted string without performing I/O.
//
// Everything written to standard output is plain text without color codes so
// that repeated runs are byte-identical. Colors and frames are reserved for
// the optional stderr report.
package cli

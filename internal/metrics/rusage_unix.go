//go:build linux || darwin

package metrics

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PeakRSS returns the peak resident set size of the current process in bytes,
// the figure GNU time reports as "Maximum resident set size".
func PeakRSS() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	// Linux reports kilobytes, Darwin reports bytes.
	if runtime.GOOS == "darwin" {
		return uint64(ru.Maxrss), nil
	}
	return uint64(ru.Maxrss) * 1024, nil
}

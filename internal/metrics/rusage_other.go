//go:build !linux && !darwin

package metrics

import "errors"

// PeakRSS is not available on this platform.
func PeakRSS() (uint64, error) {
	return 0, errors.ErrUnsupported
}

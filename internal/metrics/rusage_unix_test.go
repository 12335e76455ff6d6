//go:build linux || darwin

package metrics

import "testing"

func TestPeakRSS(t *testing.T) {
	t.Parallel()

	rss, err := PeakRSS()
	if err != nil {
		t.Fatalf("PeakRSS returned error: %v", err)
	}
	// Any running Go test binary is well above 1 MiB.
	if rss < 1<<20 {
		t.Errorf("PeakRSS = %d, expected at least 1 MiB", rss)
	}
}

package sysmon

import (
	"context"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSampleProcess(t *testing.T) {
	ps, err := SampleProcess(context.Background())
	if err != nil {
		t.Skipf("process stats unavailable on this platform: %v", err)
	}
	if ps.RSS == 0 {
		t.Error("expected non-zero RSS for the running test binary")
	}
	if ps.VMS < ps.RSS {
		t.Errorf("VMS (%d) should not be below RSS (%d)", ps.VMS, ps.RSS)
	}
}

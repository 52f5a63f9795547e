package wiki

import (
	"testing"
	"time"
)

func TestFetchStats_EmptySnapshot(t *testing.T) {
	s := NewFetchStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.TotalBytes != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestFetchStats_Aggregates(t *testing.T) {
	s := NewFetchStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40} {
		s.Record(ms, 100)
	}

	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Errorf("count = %d, want 4", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 40 {
		t.Errorf("min/max = %d/%d, want 10/40", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 25 {
		t.Errorf("avg = %v, want 25", snap.AvgMs)
	}
	if snap.TotalBytes != 400 {
		t.Errorf("total bytes = %d, want 400", snap.TotalBytes)
	}
	if snap.P50Ms < 10 || snap.P50Ms > 40 {
		t.Errorf("p50 = %v out of range", snap.P50Ms)
	}
}

func TestFetchStats_NegativeDurationClamped(t *testing.T) {
	s := NewFetchStats(time.Hour)
	s.Record(-5, 0)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("min = %d, want 0", snap.MinMs)
	}
}

func TestFetchStats_PrunesOldSamples(t *testing.T) {
	s := NewFetchStats(10 * time.Millisecond)
	s.Record(5, 1)
	time.Sleep(20 * time.Millisecond)
	s.Record(7, 1)

	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Errorf("count = %d, want 1 after pruning", snap.Count)
	}
}

package wiki

import (
	"sort"
	"sync"
	"time"
)

type fetchSample struct {
	timestamp  time.Time
	durationMs int64
	bytes      int64
}

// StatsSnapshot is a point-in-time aggregate of recent fetch samples.
type StatsSnapshot struct {
	Count      int     `json:"count"`
	TotalBytes int64   `json:"total_bytes"`
	MinMs      int64   `json:"min_ms"`
	MaxMs      int64   `json:"max_ms"`
	AvgMs      float64 `json:"avg_ms"`
	P50Ms      float64 `json:"p50_ms"`
	P95Ms      float64 `json:"p95_ms"`
}

// FetchStats tracks reference-page fetch latencies and sizes within a
// rolling window.
type FetchStats struct {
	mu      sync.Mutex
	samples []fetchSample
	maxAge  time.Duration
}

func NewFetchStats(maxAge time.Duration) *FetchStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &FetchStats{
		samples: make([]fetchSample, 0, 128),
		maxAge:  maxAge,
	}
}

func (s *FetchStats) Record(durationMs, bytes int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, fetchSample{
		timestamp:  now,
		durationMs: durationMs,
		bytes:      bytes,
	})
}

func (s *FetchStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	values := make([]int64, 0, len(s.samples))
	var sumMs, sumBytes int64
	for _, sm := range s.samples {
		values = append(values, sm.durationMs)
		sumMs += sm.durationMs
		sumBytes += sm.bytes
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count:      len(values),
		TotalBytes: sumBytes,
		MinMs:      values[0],
		MaxMs:      values[len(values)-1],
		AvgMs:      float64(sumMs) / float64(len(values)),
		P50Ms:      percentile(values, 50),
		P95Ms:      percentile(values, 95),
	}
}

func (s *FetchStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}

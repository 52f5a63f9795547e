package wiki

import (
	"math/rand/v2"
	"time"
)

const maxAttempts = 3

// backoff returns a duration for attempt n (0-indexed) with jitter.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * 500 * time.Millisecond
	if base > 5*time.Second {
		base = 5 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

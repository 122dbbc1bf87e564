package limit

import "sync/atomic"

// Limiter hands out a fixed number of execution slots.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Monotonic: Executed never decreases and never exceeds Limit.
type Limiter struct {
	limit    int64
	executed atomic.Int64
}

// NewLimiter creates a limiter allowing limit executions.
// Negative limits are treated as zero.
func NewLimiter(limit int) *Limiter {
	if limit < 0 {
		limit = 0
	}
	return &Limiter{limit: int64(limit)}
}

// Acquire reserves one execution slot.
// Returns false once the limit has been reached.
func (l *Limiter) Acquire() bool {
	for {
		n := l.executed.Load()
		if n >= l.limit {
			return false
		}
		if l.executed.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Limit returns the configured number of executions.
func (l *Limiter) Limit() int {
	return int(l.limit)
}

// Executed returns the number of slots handed out so far.
func (l *Limiter) Executed() int {
	return int(l.executed.Load())
}

// Remaining returns the number of slots still available.
func (l *Limiter) Remaining() int {
	return int(l.limit - l.executed.Load())
}

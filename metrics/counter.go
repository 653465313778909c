package metrics

import (
	"sync/atomic"
)

func NewCounter() *Counter {
	return &Counter{}
}

// Simple incrementing 64-bit integer, safe for concurrent use.
type Counter struct {
	v int64
}

// Increments the counter.
func (c *Counter) Inc() {
	atomic.AddInt64(&c.v, 1)
}

// Adds n to the counter.
func (c *Counter) Add(n int64) {
	atomic.AddInt64(&c.v, n)
}

func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.v)
}

// ScanStats bundles the counters kept while scanning log files. The counters
// are shared across files, also when files are scanned concurrently.
type ScanStats struct {
	Lines     *Counter // every line read, regardless of classification
	InfoLines *Counter
	WarnLines *Counter
	Skipped   *Counter // INFO lines missing a required field
	Rejected  *Counter // records dropped by the collection check or name filter
	Retained  *Counter
}

func NewScanStats() *ScanStats {
	return &ScanStats{
		Lines:     NewCounter(),
		InfoLines: NewCounter(),
		WarnLines: NewCounter(),
		Skipped:   NewCounter(),
		Rejected:  NewCounter(),
		Retained:  NewCounter(),
	}
}

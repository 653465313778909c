package metrics

import (
	"sync"

	"github.com/spenczar/tdigest"
)

func newSnapshot(values []int64) *Snapshot {
	td := tdigest.New()
	for _, v := range values {
		td.Add(float64(v), 1)
	}
	return &Snapshot{td, len(values)}
}

type Snapshot struct {
	estimator *tdigest.TDigest
	count     int
}

// Estimate the qth quantile values of the snapshot. Input values of
// q should be in the range [0.0, 1.0]; values outside that range are
// clipped into it automatically.
func (s *Snapshot) Quantile(quantiles ...float64) []float64 {
	ret := make([]float64, len(quantiles))
	for i, q := range quantiles {
		ret[i] = s.estimator.Quantile(q)
	}
	return ret
}

func (s *Snapshot) Count() int {
	return s.count
}

func NewHistogram() *Histogram {
	return &Histogram{}
}

// Histogram accumulates elapsed-time samples and summarizes them as
// quantile estimates.
type Histogram struct {
	sync.Mutex
	buff []int64
}

func (h *Histogram) Record(v int64) {
	h.Lock()
	defer h.Unlock()
	h.buff = append(h.buff, v)
}

// Snapshot summarizes everything recorded so far. The histogram keeps its
// samples, so a later snapshot covers the full run.
func (h *Histogram) Snapshot() *Snapshot {
	h.Lock()
	vSnapshot := make([]int64, len(h.buff))
	copy(vSnapshot, h.buff)
	h.Unlock()
	return newSnapshot(vSnapshot)
}

// Package aggregate groups retained query records and warning messages and
// computes per-group elapsed-time statistics.
package aggregate

import (
	"math"
	"sort"

	"github.com/solrlab/solrqstat/scan"
)

// Key identifies one report row. Structural equality on the struct is the
// row identity; composite string keys invite collisions between fields.
// Query is left empty when pattern-only grouping is configured.
type Key struct {
	Collection string
	Pattern    string
	Query      string
	Sort       string
}

// Row is the aggregate of one bucket after scanning completes.
type Row struct {
	Key   Key
	Count int64
	Min   int64
	Max   int64
	Avg   float64 // mean elapsed ms, rounded to 2 decimals
}

// WarnRow is the occurrence count of one distinct warning message.
type WarnRow struct {
	Text  string
	Count int64
}

// Aggregator owns the bucket maps for one scan. It is not safe for
// concurrent use; concurrent scans keep one Aggregator per file and merge.
type Aggregator struct {
	groupByQuery bool
	buckets      map[Key][]int64
	warns        map[string]int64
}

// New returns an empty Aggregator. When groupByQuery is false the raw query
// text is dropped from the grouping key, collapsing rows that share a
// pattern.
func New(groupByQuery bool) *Aggregator {
	return &Aggregator{
		groupByQuery: groupByQuery,
		buckets:      map[Key][]int64{},
		warns:        map[string]int64{},
	}
}

// Add folds one retained record into its bucket. Callers must already have
// checked the target collection and the name filter; pattern is the
// normalized form of rec.Query. Buckets are created lazily on first sample.
func (a *Aggregator) Add(rec scan.Record, pattern string) {
	k := Key{
		Collection: rec.Collection,
		Pattern:    pattern,
		Sort:       rec.Sort,
	}
	if a.groupByQuery {
		k.Query = rec.Query
	}
	a.buckets[k] = append(a.buckets[k], rec.ElapsedMS)
}

// AddWarn counts one warning occurrence under its trimmed message text.
func (a *Aggregator) AddWarn(text string) {
	a.warns[text]++
}

// Merge folds other into a. Sample lists are concatenated and warning counts
// summed, so merging per-file aggregators in any order yields the same
// statistics as one sequential scan.
func (a *Aggregator) Merge(other *Aggregator) {
	for k, samples := range other.buckets {
		a.buckets[k] = append(a.buckets[k], samples...)
	}
	for text, n := range other.warns {
		a.warns[text] += n
	}
}

// Rows computes the per-bucket statistics. Statistics are computed once,
// over the full bucket; a bucket always has at least one sample. Rows are
// sorted by (collection, pattern, query, sort) for reproducible output.
func (a *Aggregator) Rows() []Row {
	rows := make([]Row, 0, len(a.buckets))
	for k, samples := range a.buckets {
		min, max := samples[0], samples[0]
		var sum int64
		for _, v := range samples {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}
		mean := float64(sum) / float64(len(samples))
		rows = append(rows, Row{
			Key:   k,
			Count: int64(len(samples)),
			Min:   min,
			Max:   max,
			Avg:   math.Round(mean*100) / 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		ki, kj := rows[i].Key, rows[j].Key
		if ki.Collection != kj.Collection {
			return ki.Collection < kj.Collection
		}
		if ki.Pattern != kj.Pattern {
			return ki.Pattern < kj.Pattern
		}
		if ki.Query != kj.Query {
			return ki.Query < kj.Query
		}
		return ki.Sort < kj.Sort
	})
	return rows
}

// Warns returns the warning counts sorted by message text.
func (a *Aggregator) Warns() []WarnRow {
	rows := make([]WarnRow, 0, len(a.warns))
	for text, n := range a.warns {
		rows = append(rows, WarnRow{Text: text, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Text < rows[j].Text })
	return rows
}

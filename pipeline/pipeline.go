// Package pipeline wires the scan, mask and aggregate stages into one run
// over a batch of log files.
package pipeline

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/solrlab/solrqstat/aggregate"
	"github.com/solrlab/solrqstat/mask"
	"github.com/solrlab/solrqstat/metrics"
	"github.com/solrlab/solrqstat/scan"
)

// Config is the behavior surface of one run. It is passed by value into Run;
// the stages never read ambient state.
type Config struct {
	Collection        string   // target collection, required
	NameFields        []string // defaults to mask.DefaultNameFields
	RequireWildcard   bool     // name-field value must end with *
	PreserveNameField bool     // keep <field>:<VAL>* keys in patterns
	GroupByQuery      bool     // include the raw query in the grouping key
	Workers           int      // files scanned concurrently; <=1 is sequential
}

// Result is everything one run accumulates.
type Result struct {
	Agg   *aggregate.Aggregator
	Stats *metrics.ScanStats
	Hist  *metrics.Histogram
}

// Run scans the files in order and returns the folded result. Per-line
// problems (unclassifiable lines, missing fields) are skips, not errors;
// an unreadable file fails the whole run.
func Run(cfg Config, files []string) (*Result, error) {
	res := &Result{
		Agg:   aggregate.New(cfg.GroupByQuery),
		Stats: metrics.NewScanStats(),
		Hist:  metrics.NewHistogram(),
	}
	filter := mask.NewFilter(cfg.NameFields, cfg.RequireWildcard)
	norm := mask.NewNormalizer(cfg.NameFields, cfg.PreserveNameField)

	if cfg.Workers <= 1 {
		for _, path := range files {
			if err := scanOne(path, cfg, filter, norm, res.Agg, res.Stats, res.Hist); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	// Each file folds into its own aggregator; the partials are merged in
	// file order afterwards. Counters and the histogram are concurrency-safe
	// and shared directly. Min/max/mean are order-independent, so the merged
	// report is identical to a sequential scan.
	partials := make([]*aggregate.Aggregator, len(files))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			agg := aggregate.New(cfg.GroupByQuery)
			if err := scanOne(path, cfg, filter, norm, agg, res.Stats, res.Hist); err != nil {
				return err
			}
			partials[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, agg := range partials {
		res.Agg.Merge(agg)
	}
	return res, nil
}

func scanOne(path string, cfg Config, filter *mask.Filter, norm *mask.Normalizer,
	agg *aggregate.Aggregator, stats *metrics.ScanStats, hist *metrics.Histogram) error {
	return scan.ScanFile(path, func(kind scan.Kind, rest string) {
		stats.Lines.Inc()
		switch kind {
		case scan.Warn:
			stats.WarnLines.Inc()
			agg.AddWarn(strings.TrimSpace(rest))
		case scan.Info:
			stats.InfoLines.Inc()
			rec, ok := scan.Extract(rest)
			if !ok {
				stats.Skipped.Inc()
				return
			}
			if rec.Collection != cfg.Collection || !filter.Match(rec.Query) {
				stats.Rejected.Inc()
				return
			}
			agg.Add(rec, norm.Normalize(rec.Query))
			hist.Record(rec.ElapsedMS)
			stats.Retained.Inc()
		}
	})
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/solrlab/solrqstat/pipeline"
	"github.com/solrlab/solrqstat/reporter"
	"github.com/solrlab/solrqstat/scan"
)

var (
	cfg     Config
	envErr  error
	table   bool
	verbose bool
)

func init() {
	// Environment first, so flag defaults reflect it; explicit flags win.
	envErr = cleanenv.ReadEnv(&cfg)

	f := reportCmd.Flags()
	f.StringVar(&cfg.Dir, "dir", cfg.Dir, "Directory holding the .log/.out files to scan (non-recursive).")
	f.StringVar(&cfg.Out, "out", cfg.Out, "Path of the CSV report to write.")
	f.StringVar(&cfg.Collection, "collection", cfg.Collection, "Target collection. Records from other collections are dropped.")
	f.StringSliceVar(&cfg.NameFields, "name_fields", cfg.NameFields, "Name-search fields that qualify a query for the report.")
	f.BoolVar(&cfg.RequireWildcard, "require_wildcard", cfg.RequireWildcard, "Require a trailing * on the name-field value.")
	f.BoolVar(&cfg.PreserveNameField, "preserve_name_field", cfg.PreserveNameField, "Keep the name-field key and wildcard in patterns.")
	f.BoolVar(&cfg.GroupByQuery, "group_by_query", cfg.GroupByQuery, "Group by raw query text in addition to the pattern.")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of files scanned concurrently.")
	f.BoolVar(&table, "table", false, "Also print the report as a table on stdout.")
	f.BoolVarP(&verbose, "verbose", "v", false, "Per-file progress output. Good for debugging.")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Scans a directory of Solr logs and writes the QTime report.",
	Long: `Scans every .log and .out file in the input directory once, keeps query
executions of the target collection whose q parameter searches one of the
configured name fields, and writes per-pattern count/min/max/avg QTime rows
plus one row per distinct WARN message.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFormatter(&log.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if envErr != nil {
			return fmt.Errorf("reading environment config: %w", envErr)
		}
		if cfg.Collection == "" {
			return fmt.Errorf("target collection can not be empty. Please set --collection flag or SOLRQSTAT_COLLECTION.")
		}
		if cfg.Workers < 1 {
			cfg.Workers = 1
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := scan.Discover(cfg.Dir)
		if err != nil {
			return err
		}
		log.Debugf("Discovered %d log files under %s", len(files), cfg.Dir)

		cfg.StartTime = time.Now()
		res, err := pipeline.Run(pipeline.Config{
			Collection:        cfg.Collection,
			NameFields:        cfg.NameFields,
			RequireWildcard:   cfg.RequireWildcard,
			PreserveNameField: cfg.PreserveNameField,
			GroupByQuery:      cfg.GroupByQuery,
			Workers:           cfg.Workers,
		}, files)
		if err != nil {
			return err
		}
		cfg.FinishTime = time.Now()

		rows := res.Agg.Rows()
		warns := res.Agg.Warns()
		if len(rows) == 0 && len(warns) == 0 {
			log.Warnf("No qualifying records found in %d files; writing an empty report.", len(files))
		}
		if err := reporter.WriteCSV(cfg.Out, cfg.Collection, rows, warns); err != nil {
			return err
		}
		if snap := res.Hist.Snapshot(); snap.Count() > 0 {
			if err := reporter.WriteQuantiles(cfg.sidecar("_quantiles.csv"), snap); err != nil {
				return err
			}
		}
		if err := cfg.Write(); err != nil {
			return err
		}
		if table {
			reporter.RenderTable(os.Stdout, cfg.Collection, rows, warns)
		}

		log.WithFields(log.Fields{
			"files":    len(files),
			"lines":    res.Stats.Lines.Get(),
			"info":     res.Stats.InfoLines.Get(),
			"warn":     res.Stats.WarnLines.Get(),
			"skipped":  res.Stats.Skipped.Get(),
			"rejected": res.Stats.Rejected.Get(),
			"retained": res.Stats.Retained.Get(),
			"took":     cfg.FinishTime.Sub(cfg.StartTime).Round(time.Millisecond).String(),
		}).Infof("Report written to %s", cfg.Out)
		return nil
	},
}

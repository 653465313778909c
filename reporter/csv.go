// Package reporter serializes aggregated rows as CSV and console tables.
package reporter

import (
	"bufio"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/solrlab/solrqstat/aggregate"
)

// Header is the fixed, ordered column set of the report.
var Header = []string{
	"Collection", "Log_Type", "Query_Pattern", "Query", "Sort",
	"Count", "Min_QTime", "Max_QTime", "Avg_QTime",
}

// QueryRow renders one aggregated query bucket.
func QueryRow(r aggregate.Row) []string {
	return []string{
		r.Key.Collection,
		"INFO",
		r.Key.Pattern,
		r.Key.Query,
		r.Key.Sort,
		strconv.FormatInt(r.Count, 10),
		strconv.FormatInt(r.Min, 10),
		strconv.FormatInt(r.Max, 10),
		strconv.FormatFloat(r.Avg, 'f', 2, 64),
	}
}

// WarnRow renders one warning count. Pattern, sort and the QTime columns
// are empty fields, not zeros; a warning has no timing to report.
func WarnRow(collection string, w aggregate.WarnRow) []string {
	return []string{
		collection,
		"WARN",
		"",
		w.Text,
		"",
		strconv.FormatInt(w.Count, 10),
		"", "", "",
	}
}

// WriteCSV writes the full report to path: header, query rows, then warning
// rows. An empty report still gets its header.
func WriteCSV(path, collection string, rows []aggregate.Row, warns []aggregate.WarnRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)
	w.Write(Header)
	for _, r := range rows {
		w.Write(QueryRow(r))
	}
	for _, wr := range warns {
		w.Write(WarnRow(collection, wr))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

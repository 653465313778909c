package reporter

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/solrlab/solrqstat/aggregate"
)

// RenderTable prints the same rows as WriteCSV as an ASCII table, for eyeballing
// a report without opening the CSV.
func RenderTable(w io.Writer, collection string, rows []aggregate.Row, warns []aggregate.WarnRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Header)
	for _, r := range rows {
		table.Append(QueryRow(r))
	}
	for _, wr := range warns {
		table.Append(WarnRow(collection, wr))
	}
	table.Render()
}

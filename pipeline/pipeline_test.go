package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrlab/solrqstat/aggregate"
)

func testConfig() Config {
	return Config{
		Collection:        "test_collection",
		RequireWildcard:   true,
		PreserveNameField: true,
		GroupByQuery:      true,
		Workers:           1,
	}
}

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "solr.log",
		"2024-01-01 10:00:00.000 INFO (qtp-11) o.a.s.c.S.Request path=/select collection=test_collection&q=FST_NM:Dan*&sort=score desc&rows=10 QTime=15\n"+
			"2024-01-01 10:00:01.000 WARN disk low\n")

	res, err := Run(testConfig(), []string{path})
	require.NoError(t, err)

	rows := res.Agg.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, aggregate.Key{
		Collection: "test_collection",
		Pattern:    "FST_NM:<VAL>*",
		Query:      "FST_NM:Dan*",
		Sort:       "score desc",
	}, rows[0].Key)
	assert.Equal(t, int64(1), rows[0].Count)
	assert.Equal(t, int64(15), rows[0].Min)
	assert.Equal(t, int64(15), rows[0].Max)
	assert.Equal(t, 15.0, rows[0].Avg)

	warns := res.Agg.Warns()
	require.Len(t, warns, 1)
	assert.Equal(t, aggregate.WarnRow{Text: "disk low", Count: 1}, warns[0])

	assert.Equal(t, int64(2), res.Stats.Lines.Get())
	assert.Equal(t, int64(1), res.Stats.Retained.Get())
	assert.Equal(t, 1, res.Hist.Snapshot().Count())
}

func TestRunFiltersOtherCollections(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "solr.log",
		"2024-01-01 10:00:00.000 INFO collection=other&q=FST_NM:Dan* QTime=15\n"+
			"2024-01-01 10:00:00.500 INFO collection=test_collection&q=city:Berlin QTime=8\n"+
			"2024-01-01 10:00:01.000 INFO collection=test_collection&q=LAST_NAME:Smith QTime=9\n")

	res, err := Run(testConfig(), []string{path})
	require.NoError(t, err)
	assert.Empty(t, res.Agg.Rows()) // wrong collection, no name field, no wildcard
	assert.Equal(t, int64(3), res.Stats.Rejected.Get())
}

func TestRunParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 6; i++ {
		content := ""
		for j := 0; j < 20; j++ {
			content += fmt.Sprintf(
				"2024-01-01 10:00:%02d.000 INFO collection=test_collection&q=FST_NM:Dan%d*&sort=age asc&x=1 QTime=%d\n",
				j, i, i*20+j)
		}
		content += "2024-01-01 10:00:59.000 WARN replica lag\n"
		files = append(files, writeLog(t, dir, fmt.Sprintf("node%d.log", i), content))
	}

	seqCfg := testConfig()
	seq, err := Run(seqCfg, files)
	require.NoError(t, err)

	parCfg := testConfig()
	parCfg.Workers = 4
	par, err := Run(parCfg, files)
	require.NoError(t, err)

	assert.Equal(t, seq.Agg.Rows(), par.Agg.Rows())
	assert.Equal(t, seq.Agg.Warns(), par.Agg.Warns())
	assert.Equal(t, seq.Stats.Retained.Get(), par.Stats.Retained.Get())
}

func TestRunUnreadableFile(t *testing.T) {
	_, err := Run(testConfig(), []string{filepath.Join(t.TempDir(), "nope.log")})
	require.Error(t, err)
}

// Guards the chain from classification to extraction: a WARN line whose text
// happens to carry query parameters is still counted as a warning only.
func TestWarnLineNeverExtracted(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "solr.log",
		"2024-01-01 10:00:00.000 WARN slow request collection=test_collection&q=FST_NM:Dan* QTime=9000\n")

	res, err := Run(testConfig(), []string{path})
	require.NoError(t, err)
	assert.Empty(t, res.Agg.Rows())
	require.Len(t, res.Agg.Warns(), 1)
}

package scan

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultSort is used when an INFO line carries no sort parameter.
const DefaultSort = "default"

// Record is one query execution pulled out of an INFO line.
type Record struct {
	Collection string
	Query      string // raw q parameter value, not URL-decoded
	ElapsedMS  int64
	Sort       string
}

// Each extraction is an independent first-match search over the line, not
// anchored to the line start.
var (
	queryRE      = regexp.MustCompile(`[?&]q=([^\s&]+)`)
	qtimeRE      = regexp.MustCompile(`QTime=(\d+)`)
	collectionRE = regexp.MustCompile(`collection=([^\s&]+)`)
	coreRE       = regexp.MustCompile(`(?i)\[c:([^\s\]]+)`)
	sortRE       = regexp.MustCompile(`sort=([^&}]+)`)
)

// Extract pulls the raw query, elapsed time, collection and sort out of the
// text following an INFO token. The second return is false when the query,
// elapsed time or collection cannot be located; sort falls back to
// DefaultSort. Sort values may contain spaces ("score desc").
func Extract(text string) (Record, bool) {
	q := queryRE.FindStringSubmatch(text)
	if q == nil {
		return Record{}, false
	}
	qt := qtimeRE.FindStringSubmatch(text)
	if qt == nil {
		return Record{}, false
	}
	elapsed, err := strconv.ParseInt(qt[1], 10, 64)
	if err != nil {
		return Record{}, false
	}

	collection := ""
	if c := collectionRE.FindStringSubmatch(text); c != nil {
		collection = c[1]
	} else if c := coreRE.FindStringSubmatch(text); c != nil {
		collection = c[1]
	}
	if collection == "" {
		return Record{}, false
	}

	sortSpec := DefaultSort
	if s := sortRE.FindStringSubmatch(text); s != nil {
		if v := strings.TrimSpace(s[1]); v != "" {
			sortSpec = v
		}
	}

	return Record{
		Collection: collection,
		Query:      q[1],
		ElapsedMS:  elapsed,
		Sort:       sortSpec,
	}, true
}

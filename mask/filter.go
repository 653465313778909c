package mask

import (
	"regexp"
	"strings"
)

// DefaultNameFields is the name-search field set used when none is
// configured. Some deployments use LST_NM instead of LAST_NAME.
var DefaultNameFields = []string{"FST_NM", "LAST_NAME"}

// Filter accepts raw queries that search one of a fixed set of name fields.
type Filter struct {
	re *regexp.Regexp
}

// NewFilter builds a filter over the given field names. A query qualifies
// when it contains, case-insensitively, one of the fields followed by a
// colon and a value of letters, digits, underscore, hyphen or apostrophe.
// When requireWildcard is set the value must end with a * marker.
func NewFilter(fields []string, requireWildcard bool) *Filter {
	if len(fields) == 0 {
		fields = DefaultNameFields
	}
	alt := make([]string, len(fields))
	for i, f := range fields {
		alt[i] = regexp.QuoteMeta(f)
	}
	star := `\*?`
	if requireWildcard {
		star = `\*`
	}
	re := regexp.MustCompile(`(?i)\b(` + strings.Join(alt, "|") + `)\s*:\s*[\w'-]+` + star)
	return &Filter{re: re}
}

// Match reports whether the raw query qualifies for the report.
func (f *Filter) Match(rawQuery string) bool {
	return f.re.MatchString(rawQuery)
}

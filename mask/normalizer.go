package mask

import (
	"regexp"
	"strings"
)

// Placeholder tokens. None of them contains digits, hex runs of 8+ chars or
// a key/value separator, so a normalized query is a fixed point of Normalize.
const (
	numToken = "<NUM>"
	valToken = "<VAL>"
	idToken  = "<ID>"
)

var (
	numRE  = regexp.MustCompile(`\b\d+\b`)
	boolRE = regexp.MustCompile(`(?i)\b(?:YES|NO|TRUE|FALSE)\b`)
	hexRE  = regexp.MustCompile(`\b[0-9a-fA-F]{8,}\b`)
	// Generic key/value pairs. The source separator may be ':' or '=';
	// the mask always emits ':'. A trailing * on the value survives.
	kvRE = regexp.MustCompile(`(\w+)\s*[:=]\s*([\w<>'.-]+)(\*?)`)
)

// Normalizer rewrites a qualifying raw query into its canonical pattern.
type Normalizer struct {
	nameRE *regexp.Regexp // nil when name-field protection is off
}

// NewNormalizer builds a normalizer for the given name-search fields. When
// preserveNameField is set, occurrences of <field>:<value>* keep their key
// and wildcard marker and only the value is masked; otherwise name fields go
// through the generic key/value rule like any other pair.
func NewNormalizer(fields []string, preserveNameField bool) *Normalizer {
	n := &Normalizer{}
	if preserveNameField {
		if len(fields) == 0 {
			fields = DefaultNameFields
		}
		alt := make([]string, len(fields))
		for i, f := range fields {
			alt[i] = regexp.QuoteMeta(f)
		}
		n.nameRE = regexp.MustCompile(`(?i)\b(` + strings.Join(alt, "|") + `)\b\s*:\s*[\w'-]+(\*?)`)
	}
	return n
}

// Normalize applies the masking rules in a fixed order: name-field
// protection, numbers, boolean tokens, long hex identifiers, then generic
// key/value pairs. The order matters, the later rules are coarser.
// Normalize is idempotent: normalizing an already-normalized pattern
// returns it unchanged.
func (n *Normalizer) Normalize(rawQuery string) string {
	q := rawQuery
	if n.nameRE != nil {
		q = n.nameRE.ReplaceAllString(q, "${1}:"+valToken+"${2}")
	}
	q = numRE.ReplaceAllString(q, numToken)
	q = boolRE.ReplaceAllString(q, valToken)
	q = hexRE.ReplaceAllString(q, idToken)
	q = kvRE.ReplaceAllString(q, "${1}:"+valToken+"${3}")
	return q
}

// Package mask decides which raw queries qualify for the report and rewrites
// qualifying queries into canonical patterns. Masking replaces literal values
// (numbers, booleans, long hex identifiers, generic key/value pairs) with
// placeholder tokens so that queries differing only in literals collapse into
// one pattern key.
package mask

package mask

import (
	"testing"

	"github.com/matryer/is"
)

func TestNormalizePrecedence(t *testing.T) {
	is := is.New(t)
	n := NewNormalizer(nil, true)
	got := n.Normalize("FST_NM:Dan*&age=30&flag=YES&id=deadbeef1234")
	// The name field keeps its key and wildcard; the generic rule emits ':'
	// for every pair, also where the source used '='.
	is.Equal(got, "FST_NM:<VAL>*&age:<VAL>&flag:<VAL>&id:<VAL>")
}

func TestNormalizeIdempotent(t *testing.T) {
	is := is.New(t)
	n := NewNormalizer(nil, true)
	for _, raw := range []string{
		"FST_NM:Dan*&age=30&flag=YES&id=deadbeef1234",
		"LAST_NAME:Smith*",
		"status:ACTIVE&retry:no&ttl:86400",
		"cachekey:0123456789abcdef&q=weight:3.14",
		"42",
		"already <VAL> masked key:<VAL>*",
	} {
		once := n.Normalize(raw)
		is.Equal(n.Normalize(once), once)
	}
}

func TestNormalizeMasks(t *testing.T) {
	is := is.New(t)
	n := NewNormalizer(nil, true)
	is.Equal(n.Normalize("age:30"), "age:<VAL>")
	is.Equal(n.Normalize("flag:true"), "flag:<VAL>")
	is.Equal(n.Normalize("flag:False"), "flag:<VAL>")
	is.Equal(n.Normalize("id:deadbeef1234"), "id:<VAL>")
	is.Equal(n.Normalize("token deadbeef1234 alone"), "token <ID> alone")
	is.Equal(n.Normalize("took 42 ms"), "took <NUM> ms")
	is.Equal(n.Normalize("deadbee"), "deadbee") // 7 hex chars, below the ID cutoff
}

func TestNormalizeWithoutNameProtection(t *testing.T) {
	is := is.New(t)
	n := NewNormalizer(nil, false)
	// The generic key/value rule still masks the value and keeps the marker.
	is.Equal(n.Normalize("FST_NM:Dan*"), "FST_NM:<VAL>*")
}

func TestNormalizePreservesKeyCase(t *testing.T) {
	is := is.New(t)
	n := NewNormalizer(nil, true)
	is.Equal(n.Normalize("fst_nm:dan*"), "fst_nm:<VAL>*")
}

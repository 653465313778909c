package mask

import (
	"testing"

	"github.com/matryer/is"
)

func TestFilterWildcardMandatory(t *testing.T) {
	is := is.New(t)
	f := NewFilter(nil, true)
	is.True(f.Match("FST_NM:Dan*"))
	is.True(f.Match("rows=10&LAST_NAME:Smith*&fl=id"))
	is.True(!f.Match("LAST_NAME:Smith"))
	is.True(!f.Match("age:30&flag:YES"))
}

func TestFilterWildcardOptional(t *testing.T) {
	is := is.New(t)
	f := NewFilter(nil, false)
	is.True(f.Match("LAST_NAME:Smith"))
	is.True(f.Match("LAST_NAME:Smith*"))
	is.True(!f.Match("NICKNAME:Smith"))
}

func TestFilterCaseInsensitive(t *testing.T) {
	is := is.New(t)
	f := NewFilter(nil, true)
	is.True(f.Match("fst_nm:dan*"))
	is.True(f.Match("Last_Name:O'Neil-Smith*"))
}

func TestFilterConfiguredFieldSet(t *testing.T) {
	is := is.New(t)
	f := NewFilter([]string{"FST_NM", "LST_NM"}, true)
	is.True(f.Match("LST_NM:Smith*"))
	is.True(!f.Match("LAST_NAME:Smith*"))
}

package charset

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestToTraditional(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"王":          "王",
		"刘":          "劉",
		"张伟":         "張偉",
		"陈丽华":        "陳麗華",
		"黄晓明":        "黃曉明",
		"wang":       "wang",
		"李 No. 1":    "李 No. 1",
		"龙飞凤舞abc": "龍飛鳳舞abc",
		"孙国贾":        "孫國賈",
		"钟发":         "鍾發",
	}

	for in, want := range tests {
		assert.Equal(t, want, ToTraditional(in), "input %q", in)
	}
}

func TestToTraditional_EveryTableEntry(t *testing.T) {
	trad := []rune(Traditional)
	i := 0
	for _, s := range Simplified {
		assert.Equal(t, string(trad[i]), ToTraditional(string(s)))
		i++
	}
}

func TestToTraditional_PreservesLength(t *testing.T) {
	in := "赵钱孙李周吴郑王"
	assert.Equal(t, utf8.RuneCountInString(in), utf8.RuneCountInString(ToTraditional(in)))
}

func TestToTraditional_Idempotent(t *testing.T) {
	for _, s := range []string{"張偉", "劉德華", "陳麗華", "龍", "zhang"} {
		once := ToTraditional(s)
		assert.Equal(t, once, ToTraditional(once), "input %q", s)
	}
}

func TestToTraditional_KeepsAmbiguousSurnames(t *testing.T) {
	// These are also traditional characters in their own right.
	for _, s := range []string{"于", "余", "后", "干", "范", "沈", "台", "谷"} {
		assert.Equal(t, s, ToTraditional(s))
		_, ok := Lookup([]rune(s)[0])
		assert.False(t, ok, "%s should have no mapping", s)
	}
}

func TestTable_NoChains(t *testing.T) {
	for _, r := range Traditional {
		_, ok := s2t[r]
		assert.False(t, ok, "traditional %c is also a simplified key", r)
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup('门')
	assert.True(t, ok)
	assert.Equal(t, '門', r)

	_, ok = Lookup('a')
	assert.False(t, ok)
}

func TestTableAligned(t *testing.T) {
	assert.Equal(t, utf8.RuneCountInString(Simplified), utf8.RuneCountInString(Traditional))
	assert.Equal(t, utf8.RuneCountInString(Simplified), Len())
}

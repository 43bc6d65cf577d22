package strokes

import (
	"strings"
	"testing"

	"github.com/f3rmion/shenshu/internal/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		char string
		want int
	}{
		{"一", 1},
		{"小", 3},
		{"王", 4},
		{"李", 7},
		{"吳", 7},
		{"林", 8},
		{"明", 8},
		{"張", 11},
		{"陳", 11},
		{"黃", 12},
		{"楊", 13},
		{"趙", 14},
		{"劉", 15},
		{"龍", 16},
		{"國", 11},
		{"孫", 10},
		{"熊", 14},
		{"陶", 11},
		{"鑫", 24},
		{"草", 10},
		{"江", 6},
		{"華", 12},
		{"", 0},
		{"王李", 0},
		{"a", 0},
		{"𠀀", 0},
		{"龦", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.char), "char %q", tt.char)
	}
}

func TestOfString(t *testing.T) {
	got := OfString("刘小龙")
	assert.Equal(t, []Stroke{
		{Char: "劉", Count: 15},
		{Char: "小", Count: 3},
		{Char: "龍", Count: 16},
	}, got)
}

func TestOfString_Empty(t *testing.T) {
	assert.Empty(t, OfString(""))
}

func TestOfString_UnknownCharacters(t *testing.T) {
	got := OfString("ab")
	assert.Equal(t, []Stroke{{Char: "a"}, {Char: "b"}}, got)
}

func TestLoad(t *testing.T) {
	data := `# comment
1 一
3 山川
3 口
`
	_, err := Load(strings.NewReader(data))
	require.Error(t, err, "repeated bucket must be rejected")

	table, err := Load(strings.NewReader("1 一\n\n4 王文\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, table.Buckets())
	assert.Equal(t, 4, table.Count("文"))
	assert.True(t, table.Known("王"))
	assert.False(t, table.Known("山"))
	assert.Equal(t, 0, table.Count("山"))
}

func TestLoad_FirstBucketWins(t *testing.T) {
	table, err := Load(strings.NewReader("2 人\n3 人\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count("人"))
}

func TestLoad_BadCount(t *testing.T) {
	_, err := Load(strings.NewReader("x 一\n"))
	assert.Error(t, err)
}

func TestDefaultTableCoversTraditionalForms(t *testing.T) {
	for _, c := range []string{"張", "陳", "劉", "黃", "楊", "趙", "吳", "鄭", "孫", "馬"} {
		assert.True(t, Default().Known(c), "missing %s", c)
	}
}

func TestDefaultTableCoversConverterOutput(t *testing.T) {
	var missing []string
	for _, r := range charset.Traditional {
		if !Default().Known(string(r)) {
			missing = append(missing, string(r))
		}
	}
	assert.Empty(t, missing)
}

func TestDefaultTableCoversCommonNameCharacters(t *testing.T) {
	for _, c := range strings.Split("熊陶邱郝情鑫萱雯雨國孫賈與個們體電經說鳥", "") {
		assert.True(t, Default().Known(c), "missing %s", c)
	}
}

package shenshu

import (
	"strings"
	"testing"

	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/f3rmion/shenshu/internal/strokes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDivine_SingleCharacter(t *testing.T) {
	d := NewDiviner()

	r, err := d.Divine("王")
	require.NoError(t, err)

	assert.Equal(t, "王", r.Input)
	assert.Equal(t, "王", r.Traditional)
	assert.Equal(t, []strokes.Stroke{{Char: "王", Count: 4}}, r.Strokes)
	assert.Equal(t, 185, r.Course)
	assert.Equal(t, signs.Default().Lookup(185), r.Sign)
	assert.True(t, r.Sign.Found())
}

func TestDivine_ConvertsToTraditional(t *testing.T) {
	r, err := NewDiviner().Divine("刘德华")
	require.NoError(t, err)

	assert.Equal(t, "刘德华", r.Input)
	assert.Equal(t, "劉德華", r.Traditional)
	assert.Equal(t, []strokes.Stroke{
		{Char: "劉", Count: 15},
		{Char: "德", Count: 15},
		{Char: "華", Count: 12},
	}, r.Strokes)
	assert.Equal(t, (1500+150+12)%215, r.Course)
	assert.Equal(t, "157 = ( 15 x 100 + 15 x 10 + 12 x 1) % 215", r.Formula())
}

func TestDivine_CourseZeroHasNoSign(t *testing.T) {
	r, err := NewDiviner().Divine("王小")
	require.NoError(t, err)

	assert.Equal(t, 0, r.Course)
	assert.Equal(t, signs.NoMatch, r.Sign.Name)
	assert.Nil(t, r.Sign.Paraphrase)
}

func TestDivine_UnknownCharacterCountsZero(t *testing.T) {
	// U+9FA6 is a valid ideograph with no stroke count on record.
	r, err := NewDiviner().Divine("龦")
	require.NoError(t, err)

	assert.Equal(t, 0, r.Strokes[0].Count)
	assert.Equal(t, 0, r.Course)
	assert.False(t, r.Sign.Found())
}

func TestDivine_ValidationErrors(t *testing.T) {
	d := NewDiviner()

	r, err := d.Divine("王王王王")
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Nil(t, r)

	r, err = d.Divine("wang")
	assert.ErrorIs(t, err, ErrNotChinese)
	assert.Nil(t, r)

	r, err = d.Divine("")
	assert.ErrorIs(t, err, ErrNotChinese)
	assert.Nil(t, r)
}

func TestDivine_CustomTables(t *testing.T) {
	st, err := strokes.Load(strings.NewReader("1 王\n"))
	require.NoError(t, err)

	d := NewDiviner(WithStrokes(st), WithLogger(zap.NewNop()), WithSigns(nil))

	r, err := d.Divine("王")
	require.NoError(t, err)
	assert.Equal(t, 100, r.Course)
	assert.Same(t, signs.Default(), d.Signs())
	assert.Same(t, st, d.Strokes())
}

func TestResultSummary(t *testing.T) {
	r, err := NewDiviner().Divine("王")
	require.NoError(t, err)

	s := r.Summary()
	assert.Contains(t, s, "简体字: 王")
	assert.Contains(t, s, "王的笔画数为: 4")
	assert.Contains(t, s, "课数: 185 = ( 4 x 100) % 215")
	assert.Contains(t, s, "卦象: "+r.Sign.Name)
	assert.Contains(t, s, "禁忌: ")
	assert.Contains(t, s, "注: "+signs.PlaceholderNote)
}

func TestResultSummary_NoSign(t *testing.T) {
	r, err := NewDiviner().Divine("王小")
	require.NoError(t, err)

	s := r.Summary()
	assert.Contains(t, s, "卦象: "+signs.NoMatch)
	assert.NotContains(t, s, "禁忌")
	assert.NotContains(t, s, signs.PlaceholderNote)
}

func TestDivine_CommonNames(t *testing.T) {
	tests := []struct {
		input       string
		traditional string
		counts      []int
		course      int
	}{
		{"国", "國", []int{11}, 25},
		{"孙", "孫", []int{10}, 140},
		{"贾", "賈", []int{13}, 10},
		{"熊", "熊", []int{14}, 110},
		{"陶", "陶", []int{11}, 25},
		{"情", "情", []int{11}, 25},
		{"建国", "建國", []int{9, 11}, 150},
		{"邱雨萱", "邱雨萱", []int{8, 8, 13}, 33},
		{"郝鑫", "郝鑫", []int{10, 24}, 165},
	}

	d := NewDiviner()
	for _, tt := range tests {
		r, err := d.Divine(tt.input)
		require.NoError(t, err, tt.input)

		assert.Equal(t, tt.traditional, r.Traditional, tt.input)
		var counts []int
		for _, s := range r.Strokes {
			counts = append(counts, s.Count)
		}
		assert.Equal(t, tt.counts, counts, tt.input)
		assert.Equal(t, tt.course, r.Course, tt.input)
	}
}

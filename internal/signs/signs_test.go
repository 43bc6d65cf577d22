package signs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	assert.Equal(t, Size, Default().Len())
}

func TestLookup(t *testing.T) {
	first := Default().Lookup(1)
	require.True(t, first.Found())
	assert.Equal(t, 1, first.Course)
	assert.Equal(t, "第一課 乾 中吉", first.Name)
	assert.NotEmpty(t, first.Paraphrase.Explain)
	assert.NotEmpty(t, first.Paraphrase.Description)
	assert.NotEmpty(t, first.Paraphrase.Avoid)

	last := Default().Lookup(Size)
	require.True(t, last.Found())
	assert.True(t, strings.HasPrefix(last.Name, "第二百一十五課"))
}

func TestLookup_OutOfRange(t *testing.T) {
	for _, course := range []int{-1, 0, 216, 1000} {
		s := Default().Lookup(course)
		assert.Equal(t, NoMatch, s.Name, "course %d", course)
		assert.Nil(t, s.Paraphrase, "course %d", course)
		assert.False(t, s.Found())
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	s := Default().Lookup(7)
	s.Paraphrase.Explain = "changed"
	assert.NotEqual(t, "changed", Default().Lookup(7).Paraphrase.Explain)
}

func TestAll(t *testing.T) {
	all := Default().All()
	require.Len(t, all, Size)
	for i, s := range all {
		assert.Equal(t, i+1, s.Course)
		assert.True(t, s.Found())
	}
}

func writeTable(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("signs:\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "  - name: sign %d\n    explain: e%d\n    description: d%d\n    avoid: a%d\n", i, i, i, i)
	}
	path := filepath.Join(t.TempDir(), "signs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	table, err := LoadFile(writeTable(t, Size))
	require.NoError(t, err)

	s := table.Lookup(42)
	assert.Equal(t, "sign 42", s.Name)
	assert.Equal(t, &Paraphrase{Explain: "e42", Description: "d42", Avoid: "a42"}, s.Paraphrase)
}

func TestLoadFile_WrongSize(t *testing.T) {
	_, err := LoadFile(writeTable(t, 10))
	assert.ErrorContains(t, err, "want 215")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingName(t *testing.T) {
	var b strings.Builder
	b.WriteString("signs:\n")
	for i := 0; i < Size; i++ {
		b.WriteString("  - explain: x\n")
	}
	_, err := Load(strings.NewReader(b.String()))
	assert.ErrorContains(t, err, "no name")
}

func TestDefaultTable_MarkedPlaceholder(t *testing.T) {
	assert.True(t, Default().Placeholder())
	assert.True(t, Default().Lookup(185).Placeholder)
	assert.False(t, Default().Lookup(0).Placeholder)

	table, err := LoadFile(writeTable(t, Size))
	require.NoError(t, err)
	assert.False(t, table.Placeholder())
	assert.False(t, table.Lookup(1).Placeholder)
}

func TestDefaultTable_Entries(t *testing.T) {
	tests := map[int]string{
		1:   "第一課 乾 中吉",
		2:   "第二課 坤 下下",
		64:  "第六十四課 未濟 中平",
		65:  "第六十五課 乾 上上",
		157: "第一百五十七課 坎 下下",
		185: "第一百八十五課 巽 上上",
		215: "第二百一十五課 剝 上上",
	}
	for course, want := range tests {
		assert.Equal(t, want, Default().Lookup(course).Name, "course %d", course)
	}

	names := make(map[string]int)
	for _, s := range Default().All() {
		if prev, dup := names[s.Name]; dup {
			t.Errorf("course %d repeats the name of course %d: %s", s.Course, prev, s.Name)
		}
		names[s.Name] = s.Course
	}
}

// Package strokes counts the strokes of traditional Chinese characters.
package strokes

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/shenshu/internal/charset"
)

//go:embed data/strokes.txt
var defaultData string

// Stroke is one character of a name with its stroke count.
type Stroke struct {
	Char  string `json:"char" yaml:"char"`
	Count int    `json:"count" yaml:"count"`
}

// Table holds stroke buckets. Bucket i lists the characters written with i
// strokes.
type Table struct {
	buckets []string
	index   map[rune]int
}

var defaultTable *Table

func init() {
	t, err := Load(strings.NewReader(defaultData))
	if err != nil {
		panic(fmt.Sprintf("strokes: embedded table: %v", err))
	}
	defaultTable = t
}

// Default returns the embedded stroke table.
func Default() *Table {
	return defaultTable
}

// Load reads a stroke table. Each non-empty line is a stroke count followed
// by the characters in that bucket, e.g. "4 王文方". Lines starting with '#'
// are comments. Counts must be listed in increasing order.
func Load(r io.Reader) (*Table, error) {
	t := &Table{index: make(map[rune]int)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		num, chars, _ := strings.Cut(line, " ")
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing stroke count: %w", lineNum, err)
		}
		if n < len(t.buckets) {
			return nil, fmt.Errorf("line %d: stroke count %d out of order", lineNum, n)
		}
		for len(t.buckets) < n {
			t.buckets = append(t.buckets, "")
		}

		chars = strings.TrimSpace(chars)
		t.buckets = append(t.buckets, chars)
		for _, c := range chars {
			// A character listed twice keeps its lowest bucket.
			if _, seen := t.index[c]; !seen {
				t.index[c] = n
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stroke table: %w", err)
	}

	return t, nil
}

// Count returns the stroke count of a single traditional character. Strings
// of any other length and characters missing from the table count as 0.
func (t *Table) Count(char string) int {
	if utf8.RuneCountInString(char) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(char)
	return t.index[r]
}

// OfString converts s to traditional script and counts each character.
func (t *Table) OfString(s string) []Stroke {
	trad := charset.ToTraditional(s)
	result := make([]Stroke, 0, utf8.RuneCountInString(trad))
	for _, r := range trad {
		c := string(r)
		result = append(result, Stroke{Char: c, Count: t.Count(c)})
	}
	return result
}

// Known reports whether the table lists the character.
func (t *Table) Known(char string) bool {
	if utf8.RuneCountInString(char) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(char)
	_, ok := t.index[r]
	return ok
}

// Buckets returns the number of stroke buckets, including empty ones.
func (t *Table) Buckets() int {
	return len(t.buckets)
}

// Count looks a character up in the default table.
func Count(char string) int {
	return defaultTable.Count(char)
}

// OfString counts the strokes of s using the default table.
func OfString(s string) []Stroke {
	return defaultTable.OfString(s)
}

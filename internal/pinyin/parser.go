// Package pinyin annotates name characters with their Mandarin readings.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Reading is one pronunciation of a character.
type Reading struct {
	Full string // With tone mark, e.g. "wáng"
	Bare string // Without tone mark, e.g. "wang"
	Tone int    // 1-4, 5 for the neutral tone
}

// Annotator looks up readings for Chinese characters.
type Annotator struct {
	args gopinyin.Args
}

// NewAnnotator creates an Annotator that returns every known reading.
func NewAnnotator() *Annotator {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Heteronym = true
	return &Annotator{args: args}
}

// Readings returns all readings of a single character, or nil when the
// character is not a known hanzi.
func (a *Annotator) Readings(char string) []Reading {
	result := gopinyin.Pinyin(char, a.args)
	if len(result) == 0 || len(result[0]) == 0 {
		return nil
	}

	readings := make([]Reading, len(result[0]))
	for i, full := range result[0] {
		tone, bare := extractTone(full)
		readings[i] = Reading{Full: full, Bare: bare, Tone: tone}
	}
	return readings
}

// Primary returns the most common reading of char, or "" when unknown.
func (a *Annotator) Primary(char string) string {
	r := a.Readings(char)
	if len(r) == 0 {
		return ""
	}
	return r[0].Full
}

// Annotate returns the primary reading of every rune in s, with "" for
// runes that have none.
func (a *Annotator) Annotate(s string) []string {
	var out []string
	for _, r := range s {
		out = append(out, a.Primary(string(r)))
	}
	return out
}

var toneMarks = map[rune]struct {
	base rune
	tone int
}{
	'ā': {'a', 1}, 'á': {'a', 2}, 'ǎ': {'a', 3}, 'à': {'a', 4},
	'ē': {'e', 1}, 'é': {'e', 2}, 'ě': {'e', 3}, 'è': {'e', 4},
	'ī': {'i', 1}, 'í': {'i', 2}, 'ǐ': {'i', 3}, 'ì': {'i', 4},
	'ō': {'o', 1}, 'ó': {'o', 2}, 'ǒ': {'o', 3}, 'ò': {'o', 4},
	'ū': {'u', 1}, 'ú': {'u', 2}, 'ǔ': {'u', 3}, 'ù': {'u', 4},
	'ǖ': {'ü', 1}, 'ǘ': {'ü', 2}, 'ǚ': {'ü', 3}, 'ǜ': {'ü', 4},
	'ń': {'n', 2}, 'ň': {'n', 3}, 'ǹ': {'n', 4},
}

// extractTone returns the tone number and the syllable without its mark.
func extractTone(syllable string) (int, string) {
	tone := 5
	var b strings.Builder
	for _, r := range syllable {
		if mark, ok := toneMarks[r]; ok {
			b.WriteRune(mark.base)
			tone = mark.tone
		} else {
			b.WriteRune(r)
		}
	}
	return tone, b.String()
}

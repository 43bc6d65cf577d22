// Package charset converts simplified Chinese text to its traditional form.
package charset

import (
	"strings"
	"unicode/utf8"
)

var s2t = make(map[rune]rune)

func init() {
	if utf8.RuneCountInString(Simplified) != utf8.RuneCountInString(Traditional) {
		panic("charset: simplified and traditional tables differ in length")
	}

	trad := []rune(Traditional)
	i := 0
	for _, s := range Simplified {
		// First entry wins so the table behaves like an ordered index scan.
		if _, ok := s2t[s]; !ok {
			s2t[s] = trad[i]
		}
		i++
	}
}

// Lookup returns the traditional form of r and whether the table has one.
func Lookup(r rune) (rune, bool) {
	t, ok := s2t[r]
	return t, ok
}

// ToTraditional converts s rune by rune. Runes without a traditional form,
// including non-Chinese text, are copied unchanged.
func ToTraditional(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if t, ok := s2t[r]; ok {
			b.WriteRune(t)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Len returns the number of simplified characters with a mapping.
func Len() int {
	return len(s2t)
}

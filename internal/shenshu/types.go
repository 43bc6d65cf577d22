// Package shenshu provides core types and logic for 巧連神數 name divination.
package shenshu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/f3rmion/shenshu/internal/strokes"
)

// MaxNameLength is the longest name, in characters, that can be divined.
const MaxNameLength = 3

// Result is one divination. It is built once per submission and never
// modified afterwards.
type Result struct {
	Input       string           `json:"input"`       // Name as entered (简体字)
	Traditional string           `json:"traditional"` // Converted name (繁体字)
	Strokes     []strokes.Stroke `json:"strokes"`     // One entry per character (笔画数)
	Course      int              `json:"course"`      // Course number (课数)
	Sign        signs.Sign       `json:"sign"`        // 卦象 and 解签
}

// Formula renders how the course number was derived, e.g.
// "185 = ( 4 x 100) % 215".
func (r *Result) Formula() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d = (", r.Course)
	for i, s := range r.Strokes {
		if i > 0 {
			b.WriteString(" +")
		}
		fmt.Fprintf(&b, " %d x %s", s.Count, strconv.FormatFloat(weight(i), 'f', -1, 64))
	}
	fmt.Fprintf(&b, ") %% %d", courseModulus)
	return b.String()
}

// Summary is a plain-text rendering suitable for the clipboard.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "简体字: %s\n", r.Input)
	fmt.Fprintf(&b, "繁体字: %s\n", r.Traditional)
	for _, s := range r.Strokes {
		fmt.Fprintf(&b, "%s的笔画数为: %d\n", s.Char, s.Count)
	}
	fmt.Fprintf(&b, "课数: %s\n", r.Formula())
	fmt.Fprintf(&b, "卦象: %s\n", r.Sign.Name)
	if p := r.Sign.Paraphrase; p != nil {
		fmt.Fprintf(&b, "描述: %s\n", p.Explain)
		fmt.Fprintf(&b, "解释: %s\n", p.Description)
		fmt.Fprintf(&b, "禁忌: %s\n", p.Avoid)
	}
	if r.Sign.Placeholder {
		fmt.Fprintf(&b, "注: %s\n", signs.PlaceholderNote)
	}
	return b.String()
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// row is one "label  value" output line.
type row struct {
	label string
	value string
}

// printRows writes rows with labels padded to a common display width, so
// CJK labels line up.
func printRows(w io.Writer, rows []row) {
	width := 0
	for _, r := range rows {
		if n := runewidth.StringWidth(r.label); n > width {
			width = n
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(r.label, width), r.value)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

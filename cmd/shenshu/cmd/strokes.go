package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/shenshu/internal/charset"
	"github.com/f3rmion/shenshu/internal/pinyin"
	"github.com/f3rmion/shenshu/internal/strokes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var strokesCmd = &cobra.Command{
	Use:   "strokes <text>",
	Short: "Show traditional forms, stroke counts and readings",
	Long: `Show, for each character of the input, its traditional form, the
stroke count of that form and its pinyin readings. "→" marks a converted
character, "=" one written the same in both scripts.

Characters missing from the stroke table count 0.

Example:
  shenshu strokes 刘德华`,
	Args: cobra.ExactArgs(1),
	RunE: runStrokes,
}

func init() {
	rootCmd.AddCommand(strokesCmd)
}

func runStrokes(cmd *cobra.Command, args []string) error {
	reader := pinyin.NewAnnotator()
	table := strokes.Default()
	out := cmd.OutOrStdout()

	logger.Debug("Tables loaded",
		zap.Int("mappings", charset.Len()),
		zap.Int("buckets", table.Buckets()))

	for _, r := range args[0] {
		char := string(r)
		trad, arrow := char, "="
		if t, ok := charset.Lookup(r); ok {
			trad, arrow = string(t), "→"
		}

		var readings []string
		for _, rd := range reader.Readings(char) {
			readings = append(readings, rd.Full)
		}
		if len(readings) == 0 {
			readings = []string{"-"}
		}

		known := ""
		if !table.Known(trad) {
			known = " (未收录)"
		}

		fmt.Fprintf(out, "%s %s %s  %d%s  %s\n",
			char, arrow, trad, table.Count(trad), known, strings.Join(readings, ", "))
	}

	return nil
}

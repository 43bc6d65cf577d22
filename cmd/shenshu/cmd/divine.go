package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/shenshu/internal/clipboard"
	"github.com/f3rmion/shenshu/internal/pinyin"
	"github.com/f3rmion/shenshu/internal/shenshu"
	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var divineCmd = &cobra.Command{
	Use:     "divine <name>",
	Aliases: []string{"d"},
	Short:   "Cast a 巧連神數 reading for a name",
	Long: `Cast a 巧連神數 reading for a Chinese name of one to three characters.

The name is converted to traditional script, each character's strokes are
counted, and the course number is

  course = (a x 100 + b x 10 + c x 1) % 215

Example:
  shenshu divine 王
  shenshu divine 刘德华 --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runDivine,
}

func init() {
	rootCmd.AddCommand(divineCmd)
	divineCmd.Flags().Bool("copy", false, "copy the reading to the clipboard")
	divineCmd.Flags().Bool("json", false, "print the reading as JSON")
}

func runDivine(cmd *cobra.Command, args []string) error {
	d, err := newDiviner()
	if err != nil {
		return err
	}

	res, err := d.Divine(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out, res)
	}

	printRows(out, resultRows(res, pinyin.NewAnnotator()))

	if copyIt, _ := cmd.Flags().GetBool("copy"); copyIt {
		if err := clipboard.Write(res.Summary()); err != nil {
			logger.Warn("Copy failed", zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "已复制到剪贴板")
	}

	return nil
}

func resultRows(res *shenshu.Result, reader *pinyin.Annotator) []row {
	readings := reader.Annotate(res.Input)
	parts := make([]string, len(res.Strokes))
	for i, s := range res.Strokes {
		p := s.Char
		if i < len(readings) && readings[i] != "" {
			p += " " + readings[i]
		}
		parts[i] = p + " " + strconv.Itoa(s.Count)
	}

	rows := []row{
		{"简体字", res.Input},
		{"繁体字", res.Traditional},
		{"笔画数", strings.Join(parts, "  ")},
		{"课数", res.Formula()},
		{"卦象", res.Sign.Name},
	}
	if p := res.Sign.Paraphrase; p != nil {
		rows = append(rows,
			row{"描述", p.Explain},
			row{"解释", p.Description},
			row{"禁忌", p.Avoid},
		)
	}
	if res.Sign.Placeholder {
		rows = append(rows, row{"注", signs.PlaceholderNote})
	}
	return rows
}

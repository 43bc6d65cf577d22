package cmd

import (
	"fmt"
	"strconv"

	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var signsCmd = &cobra.Command{
	Use:   "signs [course]",
	Short: "List the course table or show one course",
	Long: `List all courses of the table in use, or show the hexagram and
interpretation of a single course.

Example:
  shenshu signs
  shenshu signs 185`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSigns,
}

func init() {
	rootCmd.AddCommand(signsCmd)
}

func runSigns(cmd *cobra.Command, args []string) error {
	table, err := appConfig.LoadSigns()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, s := range table.All() {
			fmt.Fprintf(out, "%3d  %s\n", s.Course, s.Name)
		}
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("course must be a number: %q", args[0])
	}

	s := table.Lookup(n)
	rows := []row{
		{"课数", strconv.Itoa(n)},
		{"卦象", s.Name},
	}
	if s.Found() {
		rows = append(rows,
			row{"描述", s.Paraphrase.Explain},
			row{"解释", s.Paraphrase.Description},
			row{"禁忌", s.Paraphrase.Avoid},
		)
	}
	if s.Placeholder {
		rows = append(rows, row{"注", signs.PlaceholderNote})
	}
	if !s.Found() {
		logger.Debug("Course out of range", zap.Int("course", n), zap.Int("size", table.Len()))
	}
	printRows(out, rows)
	return nil
}

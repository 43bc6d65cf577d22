package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/shenshu/internal/bazi"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var baziCmd = &cobra.Command{
	Use:   "bazi <date> [time]",
	Short: "Draw up a 生辰八字 birth chart",
	Long: `Draw up a 生辰八字 birth chart for a solar date and time: lunar date,
four pillars, their five elements, na-yin, zodiac animals and star sign.

Example:
  shenshu bazi 2016-09-18 10:00`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBazi,
}

func init() {
	rootCmd.AddCommand(baziCmd)
	baziCmd.Flags().Bool("json", false, "print the chart as JSON")
}

func runBazi(cmd *cobra.Command, args []string) error {
	t, err := bazi.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	chart, err := bazi.Calculate(t)
	if err != nil {
		return err
	}
	logger.Debug("Chart computed",
		zap.Time("solar", chart.Solar),
		zap.Strings("ganzhi", chart.GanZhi.Slice()))

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out, chart)
	}

	printRows(out, []row{
		{"公历", chart.Solar.Format("2006-01-02 15:04")},
		{"农历", chart.Lunar.Year + "年" + chart.Lunar.Month + "月" + chart.Lunar.Day + " " + chart.Lunar.Hour + "时"},
		{"生肖", chart.Animal},
		{"星座", chart.StarSign + "座"},
		{"日主", chart.DayMaster()},
	})
	fmt.Fprintln(out)
	printRows(out, []row{
		{"", pillarCells("年柱", "月柱", "日柱", "时柱")},
		{"八字", pillarCells(chart.GanZhi.Slice()...)},
		{"五行", pillarCells(chart.WuXing.Slice()...)},
		{"纳音", pillarCells(chart.NaYin.Slice()...)},
		{"生肖", pillarCells(chart.ShengXiao.Slice()...)},
	})
	return nil
}

func pillarCells(cells ...string) string {
	var b strings.Builder
	for i, c := range cells {
		if i < len(cells)-1 {
			c = runewidth.FillRight(c, 8)
		}
		b.WriteString(c)
	}
	return b.String()
}

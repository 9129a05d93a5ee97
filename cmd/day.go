package cmd

import (
	"workday-audit/feature/run"

	"github.com/spf13/cobra"
)

// dayCmd lists the sites working on given days.
var dayCmd = &cobra.Command{
	Use:   "day <first.xlsx> <dates>",
	Short: "List the active sites working on the given dates",
	Long: `Lists, for each pipe-delimited date, the active sites of the first
spreadsheet working that day with the position of the date among their work days.

Example:
  workday-audit day first.xlsx "2024/05/03|2024/05/07"`,
	Args: cobra.ExactArgs(2),
	RunE: runDay,
}

func init() {
	RootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	cfg, l, runID, err := setup(true)
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg, l, runID, map[string]string{run.First: args[0]})
	if err != nil {
		return err
	}

	summary, err := runner.Day(args[1])
	if err != nil {
		return err
	}
	return finish(l, summary)
}

package cmd

import (
	"workday-audit/feature/run"

	"github.com/spf13/cobra"
)

var dayFlag string

// checkCmd runs every check over both spreadsheets.
var checkCmd = &cobra.Command{
	Use:   "check <first.xlsx> <second.xlsx>",
	Short: "Validate the first spreadsheet and reconcile it with the second",
	Long: `Runs the full pipeline:

  1. Load both spreadsheets and report skipped rows.
  2. Check declared day counts against the listed dates.
  3. Flag work days on holidays, Saturdays and Sundays.
  4. Report unparseable and duplicate dates.
  5. Optionally list the sites working on the --day dates.
  6. Reconcile both spreadsheets by site key.

Examples:
  # Full check
  workday-audit check first.xlsx second.xlsx

  # Also list sites working on two days, and fail the exit status on any finding
  workday-audit check first.xlsx second.xlsx --day "2024/05/03|2024/05/07" --strict

  # Export the results
  workday-audit check first.xlsx second.xlsx -o out/result.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&dayFlag, "day", "", "Pipe-delimited dates to list working sites for")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, l, runID, err := setup(false)
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg, l, runID, map[string]string{run.First: args[0], run.Second: args[1]})
	if err != nil {
		return err
	}

	summary, err := runner.Check(run.Options{Days: dayFlag})
	if err != nil {
		return err
	}
	return finish(l, summary)
}

package cmd

import (
	"workday-audit/feature/run"

	"github.com/spf13/cobra"
)

// siteCmd reconciles a single site.
var siteCmd = &cobra.Command{
	Use:   "site <first.xlsx> <second.xlsx> <site-key>",
	Short: "Compare one site between both spreadsheets",
	Long: `Prints the record of one site key from both spreadsheets and every
field that differs between them.

Example:
  workday-audit site first.xlsx second.xlsx S-001-0001`,
	Args: cobra.ExactArgs(3),
	RunE: runSite,
}

func init() {
	RootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, l, runID, err := setup(false)
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg, l, runID, map[string]string{run.First: args[0], run.Second: args[1]})
	if err != nil {
		return err
	}

	summary, err := runner.Site(args[2])
	if err != nil {
		return err
	}
	return finish(l, summary)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runsCount int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent generation runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsCount, "count", "n", 10, "runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	runs, err := svc.Runs(runsCount)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s  strategy=%s  loaded=%d built=%d months=%d\n",
			r.Started.Format("2006-01-02 15:04:05"), r.ID, r.Strategy,
			r.Loaded, r.TotalBuilt(), len(r.Months))
	}
	return nil
}

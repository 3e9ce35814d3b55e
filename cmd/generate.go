package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petigura/ariel-kpf/app"
)

var generateOpts app.GenerateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build observing block files for a strategy",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.Strategy, "strategy", "s", app.DefaultStrategy, "observing strategy")
	generateCmd.Flags().StringVarP(&generateOpts.Month, "month", "m", "", "single month window (default: all months plus aggregate)")
	generateCmd.Flags().IntVarP(&generateOpts.TestTargets, "test-targets", "t", 0, "targets in the small test partition")
	generateCmd.Flags().StringVar(&generateOpts.Catalog, "catalog", "", "catalog file (default: newest KPF catalog)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	run, err := svc.Generate(generateOpts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d targets in, %d blocks out\n", run.ID, run.Loaded, run.TotalBuilt())
	for _, m := range run.Months {
		fmt.Fprintf(out, "  %s/%s: %d selected, %d built, %d excluded\n",
			m.Strategy, m.Month, m.Selected, m.Built, len(m.Excluded))
		for _, f := range m.Files {
			fmt.Fprintf(out, "    %s\n", f)
		}
	}
	return nil
}

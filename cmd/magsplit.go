package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/petigura/ariel-kpf/app"
	"github.com/petigura/ariel-kpf/core/semester"
)

var magsplitStrategy string

var magsplitCmd = &cobra.Command{
	Use:   "magsplit",
	Short: "Split a strategy's targets into equal-time magnitude halves",
	RunE:  runMagsplit,
}

func init() {
	magsplitCmd.Flags().StringVarP(&magsplitStrategy, "strategy", "s", app.DefaultStrategy, "observing strategy")
	rootCmd.AddCommand(magsplitCmd)
}

func runMagsplit(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	plan, err := svc.Magsplit(magsplitStrategy)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printSplit(out, plan.Semester)
	for _, sp := range plan.Months {
		printSplit(out, sp)
	}
	if plan.Outside > 0 {
		fmt.Fprintf(out, "%d targets outside every month band\n", plan.Outside)
	}
	return nil
}

func printSplit(w io.Writer, s semester.Split) {
	fmt.Fprintf(w, "%s: cut at V=%.2f\n", s.Label, s.CutVMag)
	printGroup(w, "bright", s.Bright)
	printGroup(w, "faint", s.Faint)
}

func printGroup(w io.Writer, name string, g semester.Group) {
	if len(g.Targets) == 0 {
		fmt.Fprintf(w, "  %s: empty\n", name)
		return
	}
	fmt.Fprintf(w, "  %s: %d targets, V %.2f-%.2f, %.1f h\n",
		name, len(g.Targets), g.VMagMin, g.VMagMax, g.TotalHours())
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nightsSemester string

var nightsCmd = &cobra.Command{
	Use:   "nights",
	Short: "Download the allocated telescope nights for a semester",
	RunE:  runNights,
}

func init() {
	nightsCmd.Flags().StringVar(&nightsSemester, "semester", "2025B", "observing semester, e.g. 2025B")
	rootCmd.AddCommand(nightsCmd)
}

func runNights(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	path, n, err := svc.Nights(cmd.Context(), nightsSemester)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d nights saved to %s\n", n, path)
	return nil
}

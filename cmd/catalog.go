package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fetchURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the published ARIEL target list",
	RunE:  runFetch,
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Extract the KPF follow-up targets from the newest download",
	RunE:  runTargets,
}

var enrichBatch int

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Resolve KPF targets against SIMBAD and merge the astrometry",
	RunE:  runEnrich,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "catalog export URL (default: configured sheet)")
	enrichCmd.Flags().IntVarP(&enrichBatch, "batch", "b", 0, "identifiers per resolver query")
	rootCmd.AddCommand(fetchCmd, targetsCmd, enrichCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	path, err := svc.Fetch(cmd.Context(), fetchURL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runTargets(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	path, err := svc.Targets()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runEnrich(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	path, err := svc.Enrich(cmd.Context(), enrichBatch)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

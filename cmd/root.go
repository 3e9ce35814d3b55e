// Package cmd defines the arielkpf command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petigura/ariel-kpf/app"
	"github.com/petigura/ariel-kpf/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "arielkpf",
	Short: "Generate KPF observing blocks for ARIEL targets",
	Long: `arielkpf maintains the ARIEL target catalog and turns it into KPF
observing block files, one set per observing month.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// newService loads the configuration and builds the application service
// every subcommand runs against.
func newService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg)
}

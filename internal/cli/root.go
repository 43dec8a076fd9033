package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pittengermdp/advent-of-code/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "cubetally",
		Short:        "Cubetally — cube-game puzzle tallies",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			cleanup, _ = logger.Setup(logger.Config{Root: wd, Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .cubetally/logs/cubetally.log")

	cmd.AddCommand(tallyCmd())
	cmd.AddCommand(calibrateCmd())
	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cbcberry/berrysite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a berrysite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the port, data directory, mail recipients and senders, and writes the result to the --config path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cbcberry/berrysite/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "berrysite",
	Short: "California Berry Cultivars website server",
	Long: `berrysite serves the California Berry Cultivars marketing site: the
section-snapping pages with their live navigation sessions, the home page
intro, and the contact and careers form endpoints that relay submissions
by email.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

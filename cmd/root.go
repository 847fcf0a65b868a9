package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ingostrakh/insurehub/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "insurehub",
	Short: "Server-rendered dashboard page for the ИнгоСтрах insurance brand",
	Long: `insurehub serves the ИнгоСтрах dashboard page: hero, health gauges,
insurance figures, services and technologies. Theme, menu, tab and animation
state is kept per browser session and can be driven from plain forms, a JSON
API or a websocket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

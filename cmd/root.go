package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/xrforge/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xrforge",
	Short: "Generate WebXR scene documents from text prompts",
	Long: `xrforge turns a free-text prompt into a self-contained WebXR HTML page.
The prompt is matched against a small set of keywords to pick a scene
(forest, city or underwater) and the matching assets are filled into a
fixed document template. Scenes can be generated from the command line,
in batches from prompt files, through a local web UI, or over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

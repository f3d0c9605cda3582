package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/xrforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize xrforge configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the answers to the config file (.xrforge.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

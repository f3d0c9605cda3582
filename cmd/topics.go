package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List scene topics and the keywords that select them",
	Long:  `Lists topics in detection priority order. The first topic with a keyword found in the prompt wins; prompts matching nothing get the forest scene.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tTITLE\tKEYWORDS")
		for _, t := range scene.Topics() {
			assets := scene.LookupAssets(t)
			fmt.Fprintf(w, "%s\t%s\t%s\n", t, assets.Title, strings.Join(scene.Keywords(t), ", "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

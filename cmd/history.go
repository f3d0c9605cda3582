package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generation requests and per-topic counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled in %s", cfgFile)
		}

		store, closeHistory, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHistory()

		limit, _ := cmd.Flags().GetInt("limit")
		ctx := cmd.Context()

		entries, err := store.Recent(ctx, limit)
		if err != nil {
			return err
		}
		counts, err := store.CountByTopic(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No generations recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tTOPIC\tSOURCE\tPROMPT")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				e.CreatedAt.Local().Format(time.DateTime), e.Topic, e.Source, truncate(e.Prompt, 60))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(out)
		for _, t := range scene.Topics() {
			fmt.Fprintf(out, "%-10s %d\n", t, counts[t])
		}
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/batch"
	"github.com/ziadkadry99/xrforge/internal/history"
	"github.com/ziadkadry99/xrforge/internal/progress"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate scene documents for a directory of prompt files",
	Long: `Finds prompt files under --dir (by default **/*.txt and **/*.prompt),
generates one document per file and writes it to the output directory,
mirroring the input layout with an .html extension.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("dir", ".", "directory containing prompt files")
	batchCmd.Flags().StringSlice("include", nil, "glob patterns for prompt files (repeatable)")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns to skip (repeatable)")
	batchCmd.Flags().StringP("out", "o", "", "output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	dir, _ := cmd.Flags().GetString("dir")
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	files, err := batch.Collect(dir, include, exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No prompt files found in %s\n", dir)
		return nil
	}
	logger.Debug("prompt files collected", zap.String("dir", dir), zap.Int("count", len(files)))

	provider, err := newProvider(cfg, 0, false)
	if err != nil {
		return err
	}

	summary, runErr := batch.Run(ctx, provider, files, outDir, progress.NewReporter())

	store, closeHistory, err := openHistory(cfg)
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
	}
	defer closeHistory()
	for _, res := range summary.Results {
		recordHistory(ctx, store, logger, res.File.Prompt, res.Topic, history.SourceBatch)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d scenes in %s\n", summary.Generated(), outDir)
	for _, t := range scene.Topics() {
		if n := summary.ByTopic[t]; n > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %d\n", t, n)
		}
	}
	return runErr
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/history"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

// emptyPromptMessage is shown to the user when the prompt is blank.
const emptyPromptMessage = "Please enter a prompt!"

var generateCmd = &cobra.Command{
	Use:   "generate [prompt...]",
	Short: "Generate a WebXR scene document from a prompt",
	Long: `Generates a WebXR HTML document for the given prompt. Without arguments
the prompt is read interactively. The document is written to
<output_dir>/<slug>.html unless --out or --stdout is given.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "force a topic (forest, city, underwater) instead of detecting it")
	generateCmd.Flags().StringP("out", "o", "", "output file path")
	generateCmd.Flags().Bool("stdout", false, "write the document to stdout instead of a file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	topicFlag, _ := cmd.Flags().GetString("topic")
	outPath, _ := cmd.Flags().GetString("out")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	prompt := strings.Join(args, " ")
	if len(args) == 0 {
		prompt, err = askPrompt()
		if err != nil {
			return err
		}
	}

	provider, err := newProvider(cfg, 0, false)
	if err != nil {
		return err
	}

	resp, err := provider.Generate(ctx, engine.Request{Prompt: prompt, Topic: scene.Topic(topicFlag)})
	if errors.Is(err, engine.ErrEmptyPrompt) {
		fmt.Fprintln(cmd.ErrOrStderr(), emptyPromptMessage)
		return err
	}
	if err != nil {
		return fmt.Errorf("generating scene: %w", err)
	}
	logger.Debug("scene generated",
		zap.String("engine", provider.Name()),
		zap.String("topic", resp.Topic.String()),
		zap.Int("bytes", len(resp.Document)),
	)

	store, closeHistory, err := openHistory(cfg)
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
	}
	defer closeHistory()
	recordHistory(ctx, store, logger, prompt, resp.Topic, history.SourceCLI)

	if toStdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), resp.Document)
		return err
	}

	if outPath == "" {
		name := slugify(prompt)
		if name == "" {
			name = resp.Topic.String()
		}
		outPath = filepath.Join(cfg.OutputDir, name+".html")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(resp.Document), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s scene %q: %s\n", resp.Topic, resp.Title, outPath)
	return nil
}

func askPrompt() (string, error) {
	p := promptui.Prompt{
		Label: "Describe your scene",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return engine.ErrEmptyPrompt
			}
			return nil
		},
	}
	prompt, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("reading prompt: %w", err)
	}
	return prompt, nil
}

package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/progress"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

// Result describes one generated document.
type Result struct {
	File    PromptFile
	Topic   scene.Topic
	OutPath string
}

// Summary is returned by Run.
type Summary struct {
	Results []Result
	ByTopic map[scene.Topic]int
}

// Generated returns the number of documents written.
func (s Summary) Generated() int { return len(s.Results) }

// Run generates one HTML document per prompt file under outDir. It stops at
// the first error or when ctx is cancelled; the summary covers the documents
// written so far.
func Run(ctx context.Context, provider engine.Provider, files []PromptFile, outDir string, reporter progress.Reporter) (Summary, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	summary := Summary{ByTopic: make(map[scene.Topic]int)}

	reporter.Start(len(files))
	defer reporter.Finish()

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		resp, err := provider.Generate(ctx, engine.Request{Prompt: f.Prompt})
		if err != nil {
			return summary, fmt.Errorf("generating %s: %w", f.RelPath, err)
		}

		name := f.OutPath
		if name == "" {
			name = OutputName(f.RelPath)
		}
		out := filepath.Join(outDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return summary, fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(out, []byte(resp.Document), 0o644); err != nil {
			return summary, fmt.Errorf("writing %s: %w", out, err)
		}

		summary.Results = append(summary.Results, Result{File: f, Topic: resp.Topic, OutPath: out})
		summary.ByTopic[resp.Topic]++
		reporter.Update(i+1, f.RelPath)
	}
	return summary, nil
}

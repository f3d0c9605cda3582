package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are used by Collect when no include patterns are given.
var DefaultPatterns = []string{"**/*.txt", "**/*.prompt"}

// PromptFile is a single prompt read from disk.
type PromptFile struct {
	RelPath string // Slash-separated path relative to the collection root.
	OutPath string // Slash-separated document path relative to the output directory.
	Prompt  string // File content with surrounding whitespace removed.
}

// Collect finds prompt files under root matching any of patterns and none of
// exclude. Results are sorted by path; files that are empty after trimming
// are skipped.
func Collect(root string, patterns, exclude []string) ([]PromptFile, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	for _, p := range append(append([]string{}, patterns...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("batch: invalid pattern %q", p)
		}
	}

	fsys := os.DirFS(root)

	seen := make(map[string]bool)
	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("batch: glob %q: %w", pattern, err)
		}
		for _, m := range found {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			matches = append(matches, m)
		}
	}
	sort.Strings(matches)

	files := make([]PromptFile, 0, len(matches))
	for _, rel := range matches {
		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return nil, fmt.Errorf("batch: read %s: %w", rel, err)
		}
		prompt := strings.TrimSpace(string(data))
		if prompt == "" {
			continue
		}
		files = append(files, PromptFile{RelPath: rel, OutPath: OutputName(rel), Prompt: prompt})
	}
	if err := disambiguate(files); err != nil {
		return nil, err
	}
	return files, nil
}

// disambiguate keeps the source extension for files whose output names
// collide, so reef.txt and reef.prompt become reef.txt.html and
// reef.prompt.html. Collisions that remain after that are an error.
func disambiguate(files []PromptFile) error {
	count := make(map[string]int, len(files))
	for _, f := range files {
		count[f.OutPath]++
	}
	for i, f := range files {
		if count[f.OutPath] > 1 {
			files[i].OutPath = f.RelPath + ".html"
		}
	}

	owner := make(map[string]string, len(files))
	for _, f := range files {
		if prev, ok := owner[f.OutPath]; ok {
			return fmt.Errorf("batch: %s and %s both write %s", prev, f.RelPath, f.OutPath)
		}
		owner[f.OutPath] = f.RelPath
	}
	return nil
}

func excluded(rel string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}
	return false
}

// OutputName maps a prompt file path to its document path: the extension is
// replaced with .html.
func OutputName(rel string) string {
	return strings.TrimSuffix(rel, path.Ext(rel)) + ".html"
}

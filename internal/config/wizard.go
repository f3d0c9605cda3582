package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to xrforge! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Output directory.
	outputPrompt := promptui.Prompt{
		Label:    "Output directory for generated scenes",
		Default:  cfg.OutputDir,
		Validate: validateNonEmpty,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 2. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Port for `xrforge server`",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(trimSpace(portStr))

	// 3. Request history.
	historyPrompt := promptui.Select{
		Label: "Keep a history of prompts and detected topics?",
		Items: []string{"yes", "no"},
	}
	historyIdx, _, err := historyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("history selection: %w", err)
	}
	cfg.History.Enabled = historyIdx == 0

	// 4. Log format.
	logPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console  (human readable)",
			"json     (structured, for log shippers)",
		},
	}
	logIdx, _, err := logPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format selection: %w", err)
	}
	cfg.Log.Encoding = []string{"console", "json"}[logIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateNonEmpty(s string) error {
	if trimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(trimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}

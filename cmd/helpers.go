package cmd

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/config"
	"github.com/ziadkadry99/xrforge/internal/db"
	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/history"
	"github.com/ziadkadry99/xrforge/internal/logging"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `xrforge init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the zap logger; --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	}
	return logging.New(logCfg)
}

// openHistory opens the history store when enabled. The returned close
// function is always safe to call.
func openHistory(cfg *config.Config) (*history.Store, func(), error) {
	if !cfg.History.Enabled {
		return nil, func() {}, nil
	}
	database, err := db.Open(cfg.History.Path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening history database: %w", err)
	}
	return history.NewStore(database), func() { database.Close() }, nil
}

// recordHistory stores a history entry when store is non-nil. Failures are
// logged and otherwise ignored.
func recordHistory(ctx context.Context, store *history.Store, logger *zap.Logger, prompt string, topic scene.Topic, source history.Source) {
	if store == nil {
		return
	}
	entry, err := store.Record(ctx, history.Entry{Prompt: prompt, Topic: topic, Source: source})
	if err != nil {
		logger.Warn("recording history failed", zap.Error(err))
		return
	}
	logger.Debug("history recorded", zap.String("id", entry.ID), zap.String("topic", topic.String()))
}

// newProvider creates the configured engine, optionally rate limited.
func newProvider(cfg *config.Config, rpm int, block bool) (engine.Provider, error) {
	provider, err := engine.NewProvider(string(cfg.Engine))
	if err != nil {
		return nil, err
	}
	return engine.NewRateLimitedProvider(provider, rpm, block), nil
}

const maxSlugLen = 60

// slugify turns a prompt into a file-name-safe slug: lower-case ASCII letters
// and digits joined by single hyphens, at most maxSlugLen bytes.
func slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return strings.TrimRight(slug, "-")
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/server"
	"github.com/ziadkadry99/xrforge/internal/site"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the web UI for generating scenes in the browser",
	Long:  `Starts an HTTP server with a prompt form, a JSON API, raw document previews and the request history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}
		open, _ := cmd.Flags().GetBool("open")

		provider, err := newProvider(cfg, cfg.Server.RequestsPerMinute, false)
		if err != nil {
			return err
		}

		store, closeHistory, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHistory()

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, provider, store, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
			}
		}()

		url := fmt.Sprintf("http://localhost:%d", port)
		fmt.Fprintf(os.Stderr, "xrforge server %s starting on %s\n", Version, url)
		if store != nil {
			fmt.Fprintf(os.Stderr, "  History: %s\n", cfg.History.Path)
		}
		if open {
			site.OpenBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port from config)")
	serverCmd.Flags().Bool("open", false, "open the UI in the default browser")
	rootCmd.AddCommand(serverCmd)
}

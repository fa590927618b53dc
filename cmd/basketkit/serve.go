package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/basketkit/store"
	"github.com/rushteam/basketkit/web"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload form web server",
		Long: `Start the HTTP server with the CSV upload form.

Examples:
  # Serve on the default port with in-memory flash messages
  basketkit serve

  # Share flash messages across replicas through Redis
  basketkit serve --addr :9000 --store redis --redis-addr redis:6379`,
		PreRunE: bindFlags(map[string]string{
			"server.addr":          "addr",
			"server.max_upload_mb": "max-upload-mb",
			"store.backend":        "store",
			"store.redis_addr":     "redis-addr",
			"pipeline.file":        "pipeline",
		}),
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Int("max-upload-mb", 32, "maximum upload size in MiB")
	cmd.Flags().String("store", "memory", "flash message store backend (memory, redis)")
	cmd.Flags().String("redis-addr", "localhost:6379", "redis address when --store=redis")
	cmd.Flags().String("pipeline", "", "pipeline YAML/JSON file (overrides mining.* settings)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()

	p, err := buildPipeline()
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	p.Logger = logger

	flashStore, err := store.New(store.Options{
		Backend:   viper.GetString("store.backend"),
		RedisAddr: viper.GetString("store.redis_addr"),
		RedisDB:   viper.GetInt("store.redis_db"),
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer flashStore.Close()

	srv := web.NewServer(
		&web.PipelineRecommender{Pipeline: p},
		flashStore,
		web.WithLogger(logger),
		web.WithMaxUploadBytes(viper.GetInt64("server.max_upload_mb")<<20),
	)

	httpServer := &http.Server{
		Addr:              viper.GetString("server.addr"),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.Go(func() error {
		logger.Info("server listening",
			"addr", httpServer.Addr,
			"store", flashStore.Name(),
			"nodes", len(p.Nodes))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

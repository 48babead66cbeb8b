package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite"
	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/views"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :3000)")
	serveCmd.Flags().String("content-dir", "", "load the catalog from this directory instead of the embedded one")
	serveCmd.Flags().Bool("watch", false, "reload the catalog when files under --content-dir change")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("content_dir", serveCmd.Flags().Lookup("content-dir"))
	_ = viper.BindPFlag("watch", serveCmd.Flags().Lookup("watch"))
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := siteConfig()
	v, err := views.New(assets.Resolver{BaseURL: cfg.AssetBaseURL})
	if err != nil {
		return err
	}

	opts := []naisite.Option{
		naisite.WithLogger(logger),
		naisite.WithStaticDir(viper.GetString("static_dir")),
	}
	dir := viper.GetString("content_dir")
	var src *content.Source
	if dir != "" {
		cat, err := content.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		src = content.NewSource(cat)
		opts = append(opts, naisite.WithCatalogSource(src))
	}

	app := naisite.New(cfg, v, opts...)
	if err := app.Init(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("close", zap.Error(err))
		}
	}()

	if src != nil && viper.GetBool("watch") {
		go func() {
			if err := src.Watch(ctx, dir, logger); err != nil {
				logger.Error("catalog watcher stopped", zap.Error(err))
			}
		}()
		logger.Info("watching catalog", zap.String("dir", dir))
	}

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

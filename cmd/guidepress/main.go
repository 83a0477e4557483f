// Command guidepress runs the guide export service, or writes the guide PDF
// once and exits when --out is given.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/guidepress/guidepress"
	"github.com/guidepress/guidepress/internal/api"
	"github.com/guidepress/guidepress/internal/config"
	"github.com/guidepress/guidepress/internal/logger"
	"github.com/guidepress/guidepress/internal/metrics"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("guidepress", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to YAML config file")
	addr := flags.String("addr", "", "listen address (overrides config)")
	workers := flags.IntP("workers", "w", 0, "exporter pool size (0 = auto)")
	out := flags.StringP("out", "o", "", "write the guide PDF to this path and exit")
	verbose := flags.BoolP("verbose", "v", false, "debug logging")
	showVersion := flags.Bool("version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println("guidepress " + Version)
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *workers > 0 {
		cfg.Export.Workers = *workers
	}
	if *verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Pretty = true
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
	// in which case runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
		log.Debug().Msgf(format, a...)
	}))

	// One-shot mode: export the guide to a file, no server.
	if *out != "" {
		return exportOnce(cfg, *out, log)
	}

	return serve(cfg, log)
}

// exportOnce writes the canonical guide PDF to path.
func exportOnce(cfg config.Config, path string, log zerolog.Logger) error {
	exp := guidepress.NewExporter(
		guidepress.WithTimeout(cfg.Export.Timeout),
		guidepress.WithLogger(log),
	)
	defer exp.Close()

	result, err := exp.Export(context.Background())
	if err != nil {
		return fmt.Errorf("exporting guide: %w", err)
	}

	// #nosec G306 -- exported PDFs are intended to be readable
	if err := os.WriteFile(path, result.PDF, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("bytes", result.ByteLength).
		Int("pages", result.PageCount).
		Int("highlight_failures", result.HighlightFailures).
		Msg("guide exported")
	return nil
}

// serve runs the HTTP service until SIGINT/SIGTERM.
func serve(cfg config.Config, log zerolog.Logger) error {
	pool := guidepress.NewExporterPool(
		guidepress.ResolvePoolSize(cfg.Export.Workers),
		guidepress.WithTimeout(cfg.Export.Timeout),
		guidepress.WithLogger(log),
	)
	defer pool.Close()

	m := metrics.New()
	srv := api.NewServer(api.NewPoolExporter(pool), m, log, cfg)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

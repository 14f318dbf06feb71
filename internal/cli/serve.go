package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"covid-estimator/internal/config"
	"covid-estimator/internal/handler"
	"covid-estimator/internal/log"
	"covid-estimator/internal/reqlog"
)

func NewCmdServe() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the estimation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := log.InitLog(cfg.Service.LogLevel)
			defer func() { _ = logger.Sync() }()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	var mirror io.Writer
	if cfg.RequestLog.File != "" {
		f, err := os.OpenFile(cfg.RequestLog.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrapf(err, "opening request log %s", cfg.RequestLog.File)
		}
		defer f.Close()
		mirror = f
	}

	h := handler.New(logger, reqlog.NewSink(mirror))
	server := &fasthttp.Server{
		Handler:            h.Router(),
		Name:               cfg.Service.Name,
		ReadTimeout:        cfg.Service.ReadTimeout,
		WriteTimeout:       cfg.Service.WriteTimeout,
		MaxRequestBodySize: cfg.Service.MaxBodyBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Covid estimator starting", zap.String("config", cfg.String()))
		errCh <- server.ListenAndServe(cfg.Address())
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	if err := server.Shutdown(); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}

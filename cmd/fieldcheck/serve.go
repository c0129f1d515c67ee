package main

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/modules/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP validation service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envFile != "" {
				if err := config.LoadEnv(envFile); err != nil {
					return err
				}
			}

			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			env := environment.Parse(cfg.Env)
			log := newLogger(cmd.ErrOrStderr(), env, cfg)
			logger.SetAsDefault(log)

			srv := httpserver.New(cfg.HTTP, log, httpserver.WithAddr(addr))
			return srv.Run(cmd.Context(), newRouter(env, log))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVar(&envFile, "env-file", "", "load environment variables from this file first")
	return cmd
}

func newLogger(w io.Writer, env environment.Environment, cfg Config) *slog.Logger {
	return logger.New(
		logger.WithOutput(w),
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

func newRouter(env environment.Environment, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(env))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount("/", fieldcheck.NewService(log, nil).Handle())
	return r
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/database"
	"github.com/alpereneser/connectlist-sub003/internal/handler"
	"github.com/alpereneser/connectlist-sub003/internal/repository"
	"github.com/alpereneser/connectlist-sub003/internal/router"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/alpereneser/connectlist-sub003/internal/service"
	"github.com/spf13/cobra"
)

// DefaultShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const DefaultShutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var (
		migrate         bool
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the notification email workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if migrate {
				if err := database.Migrate(ctx, &log, cfg); err != nil {
					log.Error().Err(err).Msg("failed to migrate database")
					return err
				}
			}

			srv, err := server.New(cfg, &log, loggerService)
			if err != nil {
				log.Error().Err(err).Msg("failed to initialize server")
				return err
			}

			services, err := service.NewServices(srv, repository.NewRepositories(srv))
			if err != nil {
				log.Error().Err(err).Msg("could not create services")
				return err
			}

			r := router.NewRouter(srv, handler.NewHandlers(srv, services))
			srv.SetupHTTPServer(r)

			serveErr := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case <-ctx.Done():
			case err := <-serveErr:
				if err != nil {
					log.Error().Err(err).Msg("server stopped")
					_ = srv.Shutdown(context.Background())
					return err
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
				return err
			}

			log.Info().Msg("server exited properly")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", DefaultShutdownTimeout, "graceful shutdown timeout")

	return cmd
}

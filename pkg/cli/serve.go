package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/formwork-lab/formwork/pkg/cli/config"
	httpctrl "github.com/formwork-lab/formwork/pkg/controller/http"
	"github.com/formwork-lab/formwork/pkg/usecase"
	"github.com/formwork-lab/formwork/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var uploaderCfg config.Uploader
	var sentryCfg config.Sentry
	var formCfg config.Form

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FORMWORK_ADDR"),
			Destination: &addr,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, uploaderCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, formCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(c.Root().Version); err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}

			bootstrap, err := formCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load form configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uploader, uploaderCloser, err := uploaderCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize upload storage")
			}
			defer uploaderCloser()

			ucOpts := []usecase.Option{
				usecase.WithUploaderService(uploader),
			}
			if bootstrap != nil {
				ucOpts = append(ucOpts, usecase.WithBootstrapConfig(bootstrap))
				logging.Default().Info("Bootstrap form configuration loaded", "path", formCfg.Path())
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})

			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}

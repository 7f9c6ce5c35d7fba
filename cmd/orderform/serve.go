package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			handler, err := app.WebHandler()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = app.Config().Web.Addr
			}
			return listen(cmd.Context(), c.logger.Named("serve"), addr, handler.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (config web.addr when empty)")
	return cmd
}

func newStubCmd(c *cli) *cobra.Command {
	var (
		addr       string
		outOfStock []string
	)
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run a development order endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			cfg := app.Config()
			if addr == "" {
				addr = cfg.Stub.Addr
			}
			if len(outOfStock) > 0 {
				cfg.Stub.OutOfStock = outOfStock
				if app, err = c.appFrom(cfg); err != nil {
					return err
				}
			}
			handler, err := app.StubHandler(cmd.Context())
			if err != nil {
				return err
			}
			return listen(cmd.Context(), c.logger.Named("stub"), addr, handler.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (config stub.addr when empty)")
	cmd.Flags().StringSliceVar(&outOfStock, "out-of-stock", nil, "Topping ids to reject")
	return cmd
}

// listen serves router on addr until ctx is cancelled or SIGINT/SIGTERM arrives.
func listen(ctx context.Context, logger *zap.Logger, addr string, router *gin.Engine) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

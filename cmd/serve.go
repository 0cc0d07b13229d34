package cmd

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
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/kongnyuysido/portfolio/internal/content"
	"github.com/kongnyuysido/portfolio/internal/server"
	"github.com/kongnyuysido/portfolio/internal/view"
)

const shutdownGrace = 5 * time.Second

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio and load GitHub projects once at startup",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cmd.Flags().Changed("port") {
				v.Set("port", port)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, loader, err := setup(ctx, v, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			gin.SetMode(cfg.GinMode)

			c, err := content.Load()
			if err != nil {
				return err
			}
			router, err := server.New(loader, view.NewRenderer(c), log)
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: cfg.Addr(), Handler: router}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				loader.Start(gctx)
				return nil
			})
			g.Go(func() error {
				log.Info("listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				log.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}

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

	"cosmossdk.io/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/omnichain-graph/api"
	"github.com/strangelove-ventures/omnichain-graph/wiring"
)

const defaultListenAddr = "localhost:8000"

func serveCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validated graph over a read-only http api",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.InitAppState(); err != nil {
				return err
			}

			port, err := cmd.Flags().GetInt16(flagMetricsPort)
			if err != nil {
				return err
			}
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return err
			}
			if listenAddr == "" {
				listenAddr = a.Config.Api.ListenAddr
			}
			if listenAddr == "" {
				listenAddr = defaultListenAddr
			}

			plan, err := wiring.NewPlan(a.Graph, wiring.NewConfigResolver(a.Config.Chains))
			if err != nil {
				return err
			}

			registry, err := a.Config.Registry()
			if err != nil {
				return err
			}
			metrics := wiring.NewPromMetrics()
			metrics.Observe(a.Graph, registry)

			if !a.Debug && a.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			router, err := api.NewServer(a.Graph, plan, registry, metrics, a.Logger).Router(a.Config.Api.TrustedProxies)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			servers := []*http.Server{
				{Addr: listenAddr, Handler: router, ReadHeaderTimeout: 10 * time.Second},
				{Addr: fmt.Sprintf(":%d", port), Handler: metrics.Handler(), ReadHeaderTimeout: 10 * time.Second},
			}
			errCh := make(chan error, len(servers))
			for _, srv := range servers {
				srv := srv
				go func() {
					a.Logger.Info("Listening", "addr", srv.Addr)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						errCh <- err
					}
				}()
			}

			select {
			case <-ctx.Done():
				a.Logger.Info("Shutting down")
			case err = <-errCh:
				a.Logger.Error("Server failed", "err", err)
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			shutdownServers(shutdownCtx, a.Logger, servers)
			return err
		},
	}
	addServeFlags(cmd)
	return cmd
}

// shutdownServers stops every server, logging the ones that fail to drain in time.
func shutdownServers(ctx context.Context, logger log.Logger, servers []*http.Server) {
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown failed", "addr", srv.Addr, "err", err)
		}
	}
}
